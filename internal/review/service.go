package review

import (
	"context"
	"strings"
	"time"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, in NewReviewInput) (*Review, error)
	ListForProduct(ctx context.Context, productID string) ([]*Review, error)
	SummaryForProduct(ctx context.Context, productID string) (*Summary, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in NewReviewInput) (*Review, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Name = strings.TrimSpace(in.Name)

	if in.ProductID == "" {
		return nil, ErrMissingProduct
	}
	if in.Name == "" {
		return nil, ErrMissingName
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	rv := &Review{
		ProductID: in.ProductID,
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if id, ok := utils.GetUserIDFromContext(ctx); ok {
		rv.UserID = &id
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		logger.FromCtx(ctx).Error("failed to create review",
			zap.String("product_id", in.ProductID), zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (s *service) ListForProduct(ctx context.Context, productID string) ([]*Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list reviews",
			zap.String("product_id", productID), zap.Error(err))
		return nil, ErrFailedGetReview
	}
	if reviews == nil {
		reviews = []*Review{}
	}
	return reviews, nil
}

func (s *service) SummaryForProduct(ctx context.Context, productID string) (*Summary, error) {
	return s.repo.SummaryByProduct(ctx, productID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
