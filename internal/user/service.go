package user

import (
	"context"
	"fmt"
	"strings"

	"sufishine-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uint) (User, error)

	ListAdmins(ctx context.Context) ([]User, error)
	CreateAdmin(ctx context.Context, in RegisterInput) (User, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (string, User, error) {
	u, err := s.create(ctx, in, RoleCustomer)
	if err != nil {
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to generate jwt",
			zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	logger.FromCtx(ctx).Info("register completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", u.Email),
	)
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}
	if !u.Active {
		return "", User{}, ErrAccountDisabled
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id uint) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAdmins(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, string(RoleAdmin))
}

func (s *service) CreateAdmin(ctx context.Context, in RegisterInput) (User, error) {
	return s.create(ctx, in, RoleAdmin)
}

// SetActive toggles an account. Deactivating is refused when it would
// leave no active admin behind.
func (s *service) SetActive(ctx context.Context, id uint, active bool) error {
	if !active {
		u, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if u.Role == RoleAdmin {
			n, err := s.repo.CountActiveAdmins(ctx)
			if err != nil {
				return err
			}
			if n <= 1 {
				return ErrLastAdmin
			}
		}
	}
	return s.repo.SetActive(ctx, id, active)
}

func (s *service) create(ctx context.Context, in RegisterInput, role Role) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return User{}, ErrMissingFields
	}
	if len(in.Password) < 8 {
		return User{}, ErrWeakPassword
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, in.Name, in.Email, hashed, string(role))
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}
