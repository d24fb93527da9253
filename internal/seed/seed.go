// Package seed loads a small demo catalog on first boot so the admin UI
// has something to show against an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	domproduct "example.com/producthub/internal/domain/product"
	productuc "example.com/producthub/internal/usecase/product"
)

func demoProducts() []*domproduct.Product {
	return []*domproduct.Product{
		{Name: "iPhone 15 Pro", Description: "Apple's latest flagship phone with A17 Pro chip", Price: 35900, Stock: 100, IsActive: true},
		{Name: "MacBook Pro 14", Description: "Professional laptop with M3 Pro chip", Price: 52900, Stock: 50, IsActive: true},
		{Name: "AirPods Pro 2", Description: "Wireless earbuds with active noise cancellation", Price: 6990, Stock: 200, IsActive: true},
		{Name: "iPad Air", Description: "Lightweight tablet for everyday use", Price: 18900, Stock: 75, IsActive: true},
		{Name: "Apple Watch Series 9", Description: "Latest generation smartwatch", Price: 12900, Stock: 150, IsActive: true},
	}
}

// Run inserts the demo catalog when the store is empty; a non-empty store
// is left untouched.
func Run(ctx context.Context, logger zerolog.Logger, svc *productuc.Service) error {
	existing, err := svc.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: check existing products: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug().Int("count", len(existing)).Msg("catalog not empty, skipping seed")
		return nil
	}

	for _, p := range demoProducts() {
		if _, err := svc.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: create %q: %w", p.Name, err)
		}
	}
	logger.Info().Int("count", len(demoProducts())).Msg("seeded demo catalog")
	return nil
}
