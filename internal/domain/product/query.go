package product

import "strings"

type SortField string

const (
	SortByName       SortField = "name"
	SortByPrice      SortField = "price"
	SortByStock      SortField = "stock"
	SortByCreateTime SortField = "create_time"
	SortByUpdateTime SortField = "update_time"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// QueryParams carries pagination, search, sorting and filter inputs for
// paged product listings. Call Normalize once at the boundary before use.
type QueryParams struct {
	PageNumber int
	PageSize   int
	SearchTerm string
	SortBy     SortField
	SortOrder  SortOrder
	IsActive   *bool
	MinPrice   *float64
	MaxPrice   *float64
}

func DefaultQueryParams() QueryParams {
	return QueryParams{
		PageNumber: 1,
		PageSize:   DefaultPageSize,
		SortBy:     SortByName,
		SortOrder:  SortAsc,
	}
}

// Normalize clamps out-of-range values instead of rejecting them: page
// size above MaxPageSize is silently capped, unknown sort inputs fall
// back to name ascending.
func (q *QueryParams) Normalize() {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	q.SortBy = ParseSortField(string(q.SortBy))
	q.SortOrder = ParseSortOrder(string(q.SortOrder))
}

// Validate reports filter combinations that clamping cannot repair.
func (q QueryParams) Validate() error {
	if q.MinPrice != nil && *q.MinPrice < 0 {
		return ErrInvalidPriceRange
	}
	if q.MaxPrice != nil && *q.MaxPrice < 0 {
		return ErrInvalidPriceRange
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return ErrInvalidPriceRange
	}
	return nil
}

func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price":
		return SortByPrice
	case "stock":
		return SortByStock
	case "createtime", "create_time":
		return SortByCreateTime
	case "updatetime", "update_time":
		return SortByUpdateTime
	default:
		return SortByName
	}
}

func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return SortDesc
	}
	return SortAsc
}
