package service

import (
	"context"

	"product-portal/internal/domain"
)

type CatalogService struct {
	catalog domain.CatalogRepository
}

func NewCatalogService(catalog domain.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

type VariantInput struct {
	Name   string
	Amount float64
}

type CreateProductInput struct {
	Name        string
	Description string
	Variants    []VariantInput
}

func (s *CatalogService) Create(ctx context.Context, owner *domain.User, in CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     owner.ID,
	}
	for _, v := range in.Variants {
		p.Variants = append(p.Variants, domain.Variant{Name: v.Name, Amount: v.Amount})
	}
	if err := s.catalog.CreateWithVariants(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListAll(ctx)
}

func (s *CatalogService) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Product, error) {
	return s.catalog.ListByOwner(ctx, ownerID)
}

// Get 先取记录再做属主检查：非 admin 只能看自己的商品
func (s *CatalogService) Get(ctx context.Context, actor *domain.User, id uint) (*domain.Product, error) {
	p, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := domain.Authorize(actor, "", &p.OwnerID); !d.Allow {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	return s.catalog.Delete(ctx, id)
}
