package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Clean Code", "clean-code"},
		{"vietnamese", "Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"punctuation", "C# in Depth, 4th Ed.", "c-in-depth-4th-ed"},
		{"extra_spaces_and_hyphens", "to  kill -- a mockingbird", "to-kill-a-mockingbird"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestSafeToInt64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"valid", "42", 42},
		{"valid_with_spaces", " 7 ", 7},
		{"negative", "-3", -3},
		{"garbage", "abc", 0},
		{"float", "1.5", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeToInt64(tt.input))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Fiction", Capitalize("fICTION"))
	assert.Equal(t, "A", Capitalize("a"))
	assert.Equal(t, "", Capitalize(""))
}
