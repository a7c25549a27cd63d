package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidName     = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must not be negative")
	ErrInvalidStock    = errors.New("product stock must not be negative")
	ErrEmptyUpdate     = errors.New("no fields to update")
)
