package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectPreservingOrder(t *testing.T) {
	existing := map[int64]bool{1: true, 2: true, 5: true}

	tests := []struct {
		name string
		ids  []int64
		want []int64
	}{
		{"unknown ids dropped", []int64{1, 2, 999}, []int64{1, 2}},
		{"caller order kept", []int64{5, 1, 2}, []int64{5, 1, 2}},
		{"duplicates collapsed", []int64{2, 2, 1, 2}, []int64{2, 1}},
		{"nothing known", []int64{7, 8}, nil},
		{"empty input", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intersectPreservingOrder(tt.ids, existing))
		})
	}
}
