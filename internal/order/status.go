package order

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// allowedPredecessors lists, per target status, the states an order may be
// in when an admin moves it there. Skipping steps is allowed (a rushed admin
// marks a pending order delivered); leaving a terminal state is not.
var allowedPredecessors = map[Status][]Status{
	StatusConfirmed: {StatusPending},
	StatusShipped:   {StatusPending, StatusConfirmed},
	StatusDelivered: {StatusPending, StatusConfirmed, StatusShipped},
	StatusCancelled: {StatusPending, StatusConfirmed, StatusShipped},
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether an admin may move an order from s to
// target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, from := range allowedPredecessors[target] {
		if from == s {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", ErrInvalidStatus
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentStatusPending:
		return PaymentStatusPending, nil
	case PaymentStatusVerified:
		return PaymentStatusVerified, nil
	case PaymentStatusFailed:
		return PaymentStatusFailed, nil
	}
	return "", ErrInvalidPaymentStatus
}
