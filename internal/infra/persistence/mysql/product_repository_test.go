package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/producthub/internal/domain/product"
)

func TestListFiltersEmpty(t *testing.T) {
	where, args := listFilters(domproduct.DefaultQueryParams())
	require.Empty(t, where)
	require.Empty(t, args)
}

func TestListFiltersSearch(t *testing.T) {
	params := domproduct.DefaultQueryParams()
	params.SearchTerm = "Widget"

	where, args := listFilters(params)
	require.Equal(t, " WHERE (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", where)
	require.Equal(t, []any{"%widget%", "%widget%"}, args)
}

func TestListFiltersEscapesLikeMetacharacters(t *testing.T) {
	params := domproduct.DefaultQueryParams()
	params.SearchTerm = `100%_off\now`

	_, args := listFilters(params)
	require.Equal(t, `%100\%\_off\\now%`, args[0])
}

func TestListFiltersCombined(t *testing.T) {
	active := true
	min, max := 10.0, 99.5

	params := domproduct.DefaultQueryParams()
	params.SearchTerm = "phone"
	params.IsActive = &active
	params.MinPrice = &min
	params.MaxPrice = &max

	where, args := listFilters(params)
	require.Equal(t,
		" WHERE (LOWER(name) LIKE ? OR LOWER(description) LIKE ?) AND is_active = ? AND price >= ? AND price <= ?",
		where)
	require.Equal(t, []any{"%phone%", "%phone%", true, 10.0, 99.5}, args)
}

func TestOrderClauseWhitelist(t *testing.T) {
	cases := []struct {
		field domproduct.SortField
		order domproduct.SortOrder
		want  string
	}{
		{domproduct.SortByName, domproduct.SortAsc, " ORDER BY name ASC, id ASC"},
		{domproduct.SortByPrice, domproduct.SortDesc, " ORDER BY price DESC, id ASC"},
		{domproduct.SortByStock, domproduct.SortAsc, " ORDER BY stock ASC, id ASC"},
		{domproduct.SortByCreateTime, domproduct.SortDesc, " ORDER BY create_time DESC, id ASC"},
		{domproduct.SortByUpdateTime, domproduct.SortAsc, " ORDER BY update_time ASC, id ASC"},
		// Anything outside the whitelist falls back to name.
		{domproduct.SortField("price; DROP TABLE products"), domproduct.SortAsc, " ORDER BY name ASC, id ASC"},
	}
	for _, c := range cases {
		params := domproduct.DefaultQueryParams()
		params.SortBy = c.field
		params.SortOrder = c.order
		require.Equal(t, c.want, orderClause(params), "sort_by=%q", c.field)
	}
}
