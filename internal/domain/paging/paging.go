// Package paging provides the paged-result envelope shared by listing
// queries: one page of items plus the metadata needed to render pagination.
package paging

type PagedResult[T any] struct {
	PageNumber  int  `json:"page_number"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
	Items       []T  `json:"items"`
}

// New builds a PagedResult for one page of an already filtered, sorted and
// sliced collection. TotalCount is the match count before pagination.
func New[T any](items []T, pageNumber, pageSize, totalCount int) PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		PageNumber:  pageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
		Items:       items,
	}
}
