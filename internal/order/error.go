package order

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrOrderTerminal        = errors.New("order is in a terminal state")
	ErrMissingTrackingID    = errors.New("tracking id is required")
	ErrMissingTransactionID = errors.New("transaction id is required")
)
