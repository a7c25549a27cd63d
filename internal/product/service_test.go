package product

import (
	"context"
	"testing"

	"sufishine-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string, onlyActive bool) (*Product, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Browse(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, ListOptions{OnlyActive: true}).
		Return([]*Product{{ID: "p1", Name: "Soap"}}, nil)

	svc := NewService(repo)
	products, err := svc.Browse(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	repo.AssertExpectations(t)
}

func TestService_Create(t *testing.T) {
	t.Run("RejectsEmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(context.Background(), NewProductInput{Name: "  ", Price: 100})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(context.Background(), NewProductInput{Name: "Soap", Price: -5})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("RejectsNegativeStock", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(context.Background(), NewProductInput{Name: "Soap", Price: 5, Stock: -1})
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		input := NewProductInput{Name: "Soap", Price: 1500, Stock: 10}
		repo.On("Create", mock.Anything, input).Return(&Product{ID: "p1", Name: "Soap"}, nil)

		svc := NewService(repo)
		p, err := svc.Create(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		repo.AssertExpectations(t)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("RejectsEmptyUpdate", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Update(context.Background(), "p1", UpdateProductInput{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("RejectsBlankName", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		name := " "
		_, err := svc.Update(context.Background(), "p1", UpdateProductInput{Name: &name})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		price := 999.0
		input := UpdateProductInput{Price: &price}
		repo.On("Update", mock.Anything, "p1", input).Return(&Product{ID: "p1", Price: 999}, nil)

		svc := NewService(repo)
		p, err := svc.Update(context.Background(), "p1", input)

		assert.NoError(t, err)
		assert.Equal(t, 999.0, p.Price)
	})
}

func TestService_AdminList(t *testing.T) {
	repo := new(MockRepository)
	ctx := utils.SetUserContext(context.Background(), 1, "admin@sufishine.com", "admin")

	repo.On("List", mock.Anything, ListOptions{}).
		Return([]*Product{{ID: "p1", Active: false}}, nil)

	svc := NewService(repo)
	products, err := svc.AdminList(ctx, nil)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.False(t, products[0].Active)
}
