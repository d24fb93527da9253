package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsPaging(t *testing.T) {
	q := QueryParams{PageNumber: 0, PageSize: 500}
	q.Normalize()

	require.Equal(t, 1, q.PageNumber)
	require.Equal(t, MaxPageSize, q.PageSize)

	q = QueryParams{PageNumber: -3, PageSize: 0}
	q.Normalize()

	require.Equal(t, 1, q.PageNumber)
	require.Equal(t, DefaultPageSize, q.PageSize)
}

func TestNormalizeTrimsSearchTerm(t *testing.T) {
	q := DefaultQueryParams()
	q.SearchTerm = "  widget  "
	q.Normalize()

	require.Equal(t, "widget", q.SearchTerm)
}

func TestNormalizeSortDefaults(t *testing.T) {
	cases := []struct {
		in        string
		wantField SortField
	}{
		{"name", SortByName},
		{"Price", SortByPrice},
		{"STOCK", SortByStock},
		{"createTime", SortByCreateTime},
		{"create_time", SortByCreateTime},
		{"updateTime", SortByUpdateTime},
		{"rating", SortByName},
		{"", SortByName},
	}
	for _, c := range cases {
		q := QueryParams{PageNumber: 1, PageSize: 10, SortBy: SortField(c.in)}
		q.Normalize()
		require.Equal(t, c.wantField, q.SortBy, "sort_by=%q", c.in)
	}

	q := QueryParams{PageNumber: 1, PageSize: 10, SortOrder: "DESC"}
	q.Normalize()
	require.Equal(t, SortDesc, q.SortOrder)

	q = QueryParams{PageNumber: 1, PageSize: 10, SortOrder: "sideways"}
	q.Normalize()
	require.Equal(t, SortAsc, q.SortOrder)
}

func TestValidatePriceRange(t *testing.T) {
	min := 50.0
	max := 10.0

	q := DefaultQueryParams()
	q.MinPrice = &min
	q.MaxPrice = &max
	require.ErrorIs(t, q.Validate(), ErrInvalidPriceRange)

	neg := -1.0
	q = DefaultQueryParams()
	q.MinPrice = &neg
	require.ErrorIs(t, q.Validate(), ErrInvalidPriceRange)

	q = DefaultQueryParams()
	q.MaxPrice = &neg
	require.ErrorIs(t, q.Validate(), ErrInvalidPriceRange)

	equal := 25.0
	q = DefaultQueryParams()
	q.MinPrice = &equal
	q.MaxPrice = &equal
	require.NoError(t, q.Validate())

	require.NoError(t, DefaultQueryParams().Validate())
}
