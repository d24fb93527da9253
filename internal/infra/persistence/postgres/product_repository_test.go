package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/producthub/internal/domain/product"
)

func TestListFiltersPlaceholderNumbering(t *testing.T) {
	active := false
	min, max := 5.0, 20.0

	params := domproduct.DefaultQueryParams()
	params.SearchTerm = "pro"
	params.IsActive = &active
	params.MinPrice = &min
	params.MaxPrice = &max

	where, args := listFilters(params)
	require.Equal(t,
		" WHERE (name ILIKE $1 OR description ILIKE $1) AND is_active = $2 AND price >= $3 AND price <= $4",
		where)
	require.Equal(t, []any{"%pro%", false, 5.0, 20.0}, args)
}

func TestListFiltersNumberingSkipsUnsetFilters(t *testing.T) {
	max := 100.0
	params := domproduct.DefaultQueryParams()
	params.MaxPrice = &max

	where, args := listFilters(params)
	require.Equal(t, " WHERE price <= $1", where)
	require.Equal(t, []any{100.0}, args)
}

func TestListFiltersEscapesLikeMetacharacters(t *testing.T) {
	params := domproduct.DefaultQueryParams()
	params.SearchTerm = "50%_sale"

	_, args := listFilters(params)
	require.Equal(t, `%50\%\_sale%`, args[0])
}

func TestOrderClauseFallsBackToName(t *testing.T) {
	params := domproduct.DefaultQueryParams()
	params.SortBy = domproduct.SortField("nonsense")
	require.Equal(t, " ORDER BY name ASC, id ASC", orderClause(params))

	params.SortBy = domproduct.SortByUpdateTime
	params.SortOrder = domproduct.SortDesc
	require.Equal(t, " ORDER BY update_time DESC, id ASC", orderClause(params))
}
