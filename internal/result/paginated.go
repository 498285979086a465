package result

import (
	"math"
)

// Paginated holds one page of a list of results, as well as some related metadata
type Paginated[T any] struct {
	maxResultsPerPage int
	page              int
	hits              []T
	totalHits         int
}

func NewPaginated[T any](maxResultsPerPage, page, totalHits int, hits []T) Paginated[T] {
	return Paginated[T]{
		maxResultsPerPage: maxResultsPerPage,
		page:              page,
		totalHits:         totalHits,
		hits:              hits,
	}
}

// Paginate cuts the requested page out of items. Pages out of range are
// clamped to the first or the last one.
func Paginate[T any](items []T, page, maxResultsPerPage int) Paginated[T] {
	if maxResultsPerPage <= 0 {
		maxResultsPerPage = 10
	}

	totalPages := int(math.Ceil(float64(len(items)) / float64(maxResultsPerPage)))
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * maxResultsPerPage
	end := start + maxResultsPerPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return NewPaginated(maxResultsPerPage, page, len(items), items[start:end])
}

func (P Paginated[T]) MaxResultsPerPage() int {
	return P.maxResultsPerPage
}

func (P Paginated[T]) Page() int {
	return P.page
}

func (P Paginated[T]) Hits() []T {
	return P.hits
}

func (P Paginated[T]) TotalHits() int {
	return P.totalHits
}

// Offset is the position of the first hit of this page in the whole list
func (P Paginated[T]) Offset() int {
	if P.page < 1 {
		return 0
	}
	return (P.page - 1) * P.maxResultsPerPage
}

func (P Paginated[T]) TotalPages() int {
	if P.maxResultsPerPage == 0 {
		return 0
	}

	return int(math.Ceil(float64(P.totalHits) / float64(P.maxResultsPerPage)))
}
