package product

import (
	"context"
	"strings"
)

type Service interface {
	Browse(ctx context.Context, search *string) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	AdminList(ctx context.Context, search *string) ([]*Product, error)
	AdminGet(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Browse lists active products for the storefront.
func (s *service) Browse(ctx context.Context, search *string) ([]*Product, error) {
	return s.repo.List(ctx, ListOptions{OnlyActive: true, Search: search})
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id, true)
}

// AdminList lists every product, disabled ones included.
func (s *service) AdminList(ctx context.Context, search *string) ([]*Product, error) {
	return s.repo.List(ctx, ListOptions{Search: search})
}

func (s *service) AdminGet(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id, false)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidName
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	if !input.HasAnyField() {
		return nil, ErrEmptyUpdate
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrInvalidName
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
