package product

import (
	"context"

	"github.com/google/uuid"

	"example.com/producthub/internal/domain/paging"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	GetPaged(ctx context.Context, params QueryParams) (paging.PagedResult[*Product], error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
