// Package pagination slices in-memory lists into fixed-size pages.
//
// Page resolution follows the rules the site has always used: a page number
// that is not an integer yields the first page, and a number outside the
// valid range yields the last page.
package pagination

import "strconv"

const DefaultPageSize = 3

type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Total    int
}

func (p Page[T]) HasPrevious() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool     { return p.Number < p.NumPages }
func (p Page[T]) PreviousNumber() int {
	if p.HasPrevious() {
		return p.Number - 1
	}
	return p.Number
}
func (p Page[T]) NextNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

// NumPages returns the page count for total items; an empty list still has one page.
func NumPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Resolve turns the raw page query parameter into a valid page number.
func Resolve(raw string, total, size int) int {
	last := NumPages(total, size)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	if n < 1 || n > last {
		return last
	}
	return n
}

func Paginate[T any](items []T, size int, raw string) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	number := Resolve(raw, total, size)

	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:    items[start:end],
		Number:   number,
		NumPages: NumPages(total, size),
		Total:    total,
	}
}
