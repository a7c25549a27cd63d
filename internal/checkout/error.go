package checkout

import "errors"

var (
	ErrSessionNotFound       = errors.New("checkout session not found")
	ErrSessionExpired        = errors.New("checkout session expired")
	ErrSessionCompleted      = errors.New("checkout session already completed")
	ErrMissingShippingFields = errors.New("all shipping fields are required")
	ErrShippingIncomplete    = errors.New("shipping step not completed")
	ErrPaymentNotChosen      = errors.New("payment method not chosen")
	ErrMissingTransactionID  = errors.New("transaction id is required")
	ErrFailedCreateSession   = errors.New("failed to create checkout session")
	ErrFailedUpdateSession   = errors.New("failed to update checkout session")
)
