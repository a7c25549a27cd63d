package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidPrice    = errors.New("invalid item price")
	ErrMissingIdentity = errors.New("no user or guest identity for cart")

	// -- Resource State --
	ErrItemNotFound = errors.New("cart item not found")
	ErrCartEmpty    = errors.New("cart is empty")

	// -- Persistence Failures --
	ErrFailedSaveSnapshot = errors.New("failed to save cart snapshot")
)
