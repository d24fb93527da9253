package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"example.com/producthub/internal/domain/paging"
	dom "example.com/producthub/internal/domain/product"
)

type Service struct {
	repo dom.Repository
	now  func() time.Time
}

func NewService(repo dom.Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create assigns the id and both timestamps server-side. The caller sets
// every other field, including IsActive.
func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	now := s.now()
	p.ID = uuid.New()
	p.CreateTime = now
	p.UpdateTime = now
	return s.repo.Create(ctx, p)
}

// Update replaces all editable fields of an existing product. CreateTime
// is preserved from the stored row and UpdateTime is refreshed.
func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	existed.Name = p.Name
	existed.Description = p.Description
	existed.Price = p.Price
	existed.Stock = p.Stock
	existed.IsActive = p.IsActive
	existed.UpdateTime = s.now()

	return s.repo.Update(ctx, existed)
}

// Delete removes the row permanently. Deactivating a product instead goes
// through Update with IsActive false.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetPaged(ctx context.Context, params dom.QueryParams) (paging.PagedResult[*dom.Product], error) {
	if err := params.Validate(); err != nil {
		return paging.PagedResult[*dom.Product]{}, err
	}
	return s.repo.GetPaged(ctx, params)
}

// Exists reports whether a row with the id is present, active or not.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}
