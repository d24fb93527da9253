package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	domproduct "example.com/producthub/internal/domain/product"
)

// decodeQueryParams reads paged-listing inputs from the query string.
// Malformed numbers and booleans are rejected; out-of-range values are
// left to Normalize, which clamps instead of failing.
func decodeQueryParams(q url.Values) (domproduct.QueryParams, error) {
	params := domproduct.DefaultQueryParams()

	if raw := queryValue(q, "PageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("invalid PageNumber %q", raw)
		}
		params.PageNumber = n
	}
	if raw := queryValue(q, "PageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("invalid PageSize %q", raw)
		}
		params.PageSize = n
	}

	params.SearchTerm = queryValue(q, "SearchTerm")
	params.SortBy = domproduct.SortField(queryValue(q, "SortBy"))
	params.SortOrder = domproduct.SortOrder(queryValue(q, "SortOrder"))

	if raw := queryValue(q, "IsActive"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return params, fmt.Errorf("invalid IsActive %q", raw)
		}
		params.IsActive = &b
	}
	if raw := queryValue(q, "MinPrice"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("invalid MinPrice %q", raw)
		}
		params.MinPrice = &f
	}
	if raw := queryValue(q, "MaxPrice"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("invalid MaxPrice %q", raw)
		}
		params.MaxPrice = &f
	}

	params.Normalize()
	return params, nil
}

// queryValue accepts both the documented PascalCase parameter names and
// their lowercase spellings.
func queryValue(q url.Values, name string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return q.Get(strings.ToLower(name))
}
