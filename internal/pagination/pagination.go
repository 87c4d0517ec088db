// Package pagination implements offset-based page requests and the derived
// page metadata. There is no cursor or snapshot model: inserts and deletes
// between requests can shift result windows.
package pagination

const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// PageRequest is a 0-based page index plus a page size.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request into valid bounds and reports whether
// anything changed. Callers log the adjustment but do not surface it.
func (r PageRequest) Normalize() (PageRequest, bool) {
	n := r
	if n.Page < 0 {
		n.Page = 0
	}
	if n.Size < MinPageSize {
		n.Size = MinPageSize
	}
	if n.Size > MaxPageSize {
		n.Size = MaxPageSize
	}
	return n, n != r
}

// Offset is the row offset for the underlying query.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

type PageResult[T any] struct {
	Items         []T
	TotalElements int
	TotalPages    int
	CurrentPage   int
	PageSize      int
	HasNext       bool
	HasPrevious   bool
	NextPage      int
	PreviousPage  int
}

// NewPageResult derives page metadata from a result window and the total
// element count. With zero elements there are zero pages and neither
// neighbor flag is set.
func NewPageResult[T any](items []T, totalElements, page, size int) PageResult[T] {
	totalPages := 0
	if totalElements > 0 {
		totalPages = (totalElements + size - 1) / size
	}

	hasNext := page < totalPages-1
	hasPrevious := page > 0

	nextPage := page
	if hasNext {
		nextPage = page + 1
	}
	previousPage := page
	if hasPrevious {
		previousPage = page - 1
	}

	return PageResult[T]{
		Items:         items,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		CurrentPage:   page,
		PageSize:      size,
		HasNext:       hasNext,
		HasPrevious:   hasPrevious,
		NextPage:      nextPage,
		PreviousPage:  previousPage,
	}
}
