package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrMissingName     = errors.New("reviewer name is required")
	ErrMissingProduct  = errors.New("product id is required")
	ErrFailedGetReview = errors.New("failed to get reviews")
)
