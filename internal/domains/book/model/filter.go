package model

import (
	"fmt"
	"strings"

	"topbookstore-backend/internal/shared/utils"
)

// Recognized filter query keys.
const (
	FilterKeyCategory = "category"
	FilterKeyPrice    = "price"
	FilterKeyPages    = "pages"
	FilterKeyAuthor   = "author"
)

// Range is a numeric interval with explicit bound semantics. A bound of
// -1 means the side is unbounded.
type Range struct {
	Low      int64
	High     int64
	LowIncl  bool
	HighIncl bool
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v int64) bool {
	if r.Low >= 0 {
		if r.LowIncl {
			if v < r.Low {
				return false
			}
		} else if v <= r.Low {
			return false
		}
	}
	if r.High >= 0 {
		if r.HighIncl {
			if v > r.High {
				return false
			}
		} else if v >= r.High {
			return false
		}
	}
	return true
}

// SQLClause renders the range as a parameterized SQL condition on column,
// numbering placeholders from argIndex. The operators come from the same
// bound flags Contains uses, so the in-memory predicate and the query
// always agree on boundaries.
func (r Range) SQLClause(column string, argIndex int) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if r.Low >= 0 {
		op := ">"
		if r.LowIncl {
			op = ">="
		}
		conds = append(conds, fmt.Sprintf("%s %s $%d", column, op, argIndex))
		args = append(args, r.Low)
		argIndex++
	}
	if r.High >= 0 {
		op := "<"
		if r.HighIncl {
			op = "<="
		}
		conds = append(conds, fmt.Sprintf("%s %s $%d", column, op, argIndex))
		args = append(args, r.High)
	}

	return strings.Join(conds, " AND "), args
}

// Price brackets in minor-unit VND. The first bracket excludes its upper
// bound, banded brackets include their upper bound and exclude the lower
// one they share with the previous band (except 50to150, which includes
// both ends), and the open-ended bracket excludes its lower bound.
var priceBrackets = map[string]Range{
	"under50":   {Low: -1, High: 50_000, HighIncl: false},
	"50to150":   {Low: 50_000, LowIncl: true, High: 150_000, HighIncl: true},
	"150to500":  {Low: 150_000, LowIncl: false, High: 500_000, HighIncl: true},
	"500to1000": {Low: 500_000, LowIncl: false, High: 1_000_000, HighIncl: true},
	"over1000":  {Low: 1_000_000, LowIncl: false, High: -1},
}

// Page-count brackets.
var pageBrackets = map[string]Range{
	"under100": {Low: -1, High: 100, HighIncl: false},
	"100to500": {Low: 100, LowIncl: true, High: 500, HighIncl: true},
	"over500":  {Low: 500, LowIncl: false, High: -1},
}

// Filter is the typed form of the filter resolved from raw query
// parameters. Zero values mean "dimension inactive"; active dimensions
// combine with AND.
type Filter struct {
	CategoryID int64
	PriceTag   string // normalized bracket tag, "" = inactive
	PagesTag   string
	AuthorID   int64
}

// ResolveFilter classifies the recognized keys of a raw parameter bag
// into a Filter. Invalid or unknown values deactivate the dimension;
// resolution never fails.
func ResolveFilter(params map[string]string) Filter {
	var f Filter

	if v := params[FilterKeyCategory]; v != "" {
		if id := utils.SafeToInt64(v); id > 0 {
			f.CategoryID = id
		}
	}
	if v := params[FilterKeyPrice]; v != "" {
		tag := strings.ToLower(v)
		if _, ok := priceBrackets[tag]; ok {
			f.PriceTag = tag
		}
	}
	if v := params[FilterKeyPages]; v != "" {
		tag := strings.ToLower(v)
		if _, ok := pageBrackets[tag]; ok {
			f.PagesTag = tag
		}
	}
	if v := params[FilterKeyAuthor]; v != "" {
		if id := utils.SafeToInt64(v); id > 0 {
			f.AuthorID = id
		}
	}

	return f
}

// PriceRange returns the bracket bounds for the active price dimension.
func (f Filter) PriceRange() (Range, bool) {
	r, ok := priceBrackets[f.PriceTag]
	return r, ok
}

// PagesRange returns the bracket bounds for the active page-count dimension.
func (f Filter) PagesRange() (Range, bool) {
	r, ok := pageBrackets[f.PagesTag]
	return r, ok
}

// Active reports whether any dimension is active.
func (f Filter) Active() bool {
	return f.CategoryID > 0 || f.PriceTag != "" || f.PagesTag != "" || f.AuthorID > 0
}

// Predicate tests a book against the filter.
type Predicate func(*Book) bool

// Predicate compiles the filter into a single conjunctive predicate, one
// independent clause per active dimension. No active dimensions yields
// the identity filter.
func (f Filter) Predicate() Predicate {
	var clauses []Predicate

	if f.CategoryID > 0 {
		categoryID := f.CategoryID
		clauses = append(clauses, func(b *Book) bool {
			return b.HasCategory(categoryID)
		})
	}
	if r, ok := f.PriceRange(); ok {
		clauses = append(clauses, func(b *Book) bool {
			return r.Contains(b.Price)
		})
	}
	if r, ok := f.PagesRange(); ok {
		clauses = append(clauses, func(b *Book) bool {
			return r.Contains(int64(b.NumberOfPages))
		})
	}
	if f.AuthorID > 0 {
		authorID := f.AuthorID
		clauses = append(clauses, func(b *Book) bool {
			return b.AuthorID == authorID
		})
	}

	return func(b *Book) bool {
		for _, clause := range clauses {
			if !clause(b) {
				return false
			}
		}
		return true
	}
}
