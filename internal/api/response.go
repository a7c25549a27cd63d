package api

import (
	"errors"
	"net/http"

	"sufishine-be/internal/cart"
	"sufishine-be/internal/checkout"
	"sufishine-be/internal/order"
	"sufishine-be/internal/payment"
	"sufishine-be/internal/product"
	"sufishine-be/internal/review"
	"sufishine-be/internal/user"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything unmapped is a
// 500 with a generic body; internals never leak to clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, review.ErrReviewNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, checkout.ErrSessionNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		status = http.StatusNotFound
		msg = err.Error()

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderTerminal),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrLastAdmin),
		errors.Is(err, checkout.ErrSessionCompleted):
		status = http.StatusConflict
		msg = err.Error()

	case errors.Is(err, user.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = err.Error()

	case errors.Is(err, user.ErrAccountDisabled):
		status = http.StatusForbidden
		msg = err.Error()

	case errors.Is(err, checkout.ErrSessionExpired):
		status = http.StatusGone
		msg = err.Error()

	case errors.Is(err, payment.ErrUnknownMethod),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPaymentStatus),
		errors.Is(err, order.ErrMissingTrackingID),
		errors.Is(err, order.ErrMissingTransactionID),
		errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, cart.ErrMissingIdentity),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPrice),
		errors.Is(err, checkout.ErrMissingShippingFields),
		errors.Is(err, checkout.ErrShippingIncomplete),
		errors.Is(err, checkout.ErrPaymentNotChosen),
		errors.Is(err, checkout.ErrMissingTransactionID),
		errors.Is(err, product.ErrInvalidName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrEmptyUpdate),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrMissingName),
		errors.Is(err, review.ErrMissingProduct),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrMissingFields):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	c.JSON(status, gin.H{"error": msg})
}
