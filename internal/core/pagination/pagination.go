// Package pagination splits ordered listings into fixed-size, 1-based pages.
//
// A requested page comes straight from the query string: missing, non-numeric, zero or
// negative input selects page 1, and anything past the end selects the last page. An empty
// listing still has one (empty) page.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size of every feed.
const DefaultPageSize = 10

// Page is one slice of a listing plus the metadata the views need for navigation.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Window locates a page inside a listing of known length.
type Window struct {
	Number     int
	TotalPages int
	Offset     int
	Limit      int
}

// ParsePageNumber turns raw request input into a page number >= 1. A positive number too
// large for int comes back as math.MaxInt, so it still lands on the last page.
func ParsePageNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Resolve computes the window for the requested page of a listing with total items.
func Resolve(total int64, raw string, size int) Window {
	if size < 1 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}

	n := ParsePageNumber(raw)
	if n > pages {
		n = pages
	}

	return Window{
		Number:     n,
		TotalPages: pages,
		Offset:     (n - 1) * size,
		Limit:      size,
	}
}

// NewPage wraps items already cut to w.
func NewPage[T any](items []T, w Window) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      w.Number,
		TotalPages:  w.TotalPages,
		HasPrevious: w.Number > 1,
		HasNext:     w.Number < w.TotalPages,
	}
}

// Paginate returns the requested page of an in-memory ordered slice.
func Paginate[T any](items []T, raw string, size int) Page[T] {
	w := Resolve(int64(len(items)), raw, size)

	start := min(w.Offset, len(items))
	end := min(w.Offset+w.Limit, len(items))

	return NewPage(items[start:end], w)
}
