package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, password, role string) (User, error) {
	args := m.Called(ctx, name, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) ListByRole(ctx context.Context, role string) ([]User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) SetActive(ctx context.Context, id uint, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockRepository) CountActiveAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, "Ayesha Khan", "ayesha@example.com",
		mock.AnythingOfType("string"), "customer").
		Return(User{ID: 1, Name: "Ayesha Khan", Email: "ayesha@example.com",
			Role: RoleCustomer, Active: true}, nil)

	token, u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ayesha Khan",
		Email:    " AYESHA@example.com ",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), u.ID)
	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	repo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ayesha", Email: "ayesha@example.com", Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	repo := new(MockRepository)
	svc := NewService(repo)

	hash, _ := HashPassword("supersecret")
	repo.On("FindByEmail", mock.Anything, "ayesha@example.com").
		Return(User{ID: 1, Email: "ayesha@example.com", Password: hash,
			Role: RoleCustomer, Active: true}, nil)

	token, u, err := svc.Login(context.Background(), "Ayesha@Example.com", "supersecret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	hash, _ := HashPassword("supersecret")
	repo.On("FindByEmail", mock.Anything, "ayesha@example.com").
		Return(User{ID: 1, Password: hash, Active: true}, nil)

	_, _, err := svc.Login(context.Background(), "ayesha@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(User{}, ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	// same answer as a bad password; emails are not probeable
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	hash, _ := HashPassword("supersecret")
	repo.On("FindByEmail", mock.Anything, "old@example.com").
		Return(User{ID: 2, Password: hash, Active: false}, nil)

	_, _, err := svc.Login(context.Background(), "old@example.com", "supersecret")

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSetActive_LastAdminGuard(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, uint(1)).
		Return(User{ID: 1, Role: RoleAdmin, Active: true}, nil)
	repo.On("CountActiveAdmins", mock.Anything).Return(1, nil)

	err := svc.SetActive(context.Background(), 1, false)

	assert.ErrorIs(t, err, ErrLastAdmin)
	repo.AssertNotCalled(t, "SetActive")
}

func TestSetActive_DeactivateAdminWithOthersLeft(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, uint(2)).
		Return(User{ID: 2, Role: RoleAdmin, Active: true}, nil)
	repo.On("CountActiveAdmins", mock.Anything).Return(2, nil)
	repo.On("SetActive", mock.Anything, uint(2), false).Return(nil)

	err := svc.SetActive(context.Background(), 2, false)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSetActive_Reactivate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("SetActive", mock.Anything, uint(3), true).Return(nil)

	err := svc.SetActive(context.Background(), 3, true)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "FindByID")
}
