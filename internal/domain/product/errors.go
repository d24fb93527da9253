package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidPriceRange = errors.New("minimum price cannot exceed maximum price")
)
