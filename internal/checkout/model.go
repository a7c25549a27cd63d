package checkout

import (
	"time"

	"sufishine-be/internal/order"
	"sufishine-be/internal/payment"

	"github.com/google/uuid"
)

// Step is the wizard position. The flow is linear (shipping -> payment ->
// review) with one side path: manual payment methods without a transaction
// id detour through payment_instructions before the order is written.
type Step string

const (
	StepShipping            Step = "shipping"
	StepPayment             Step = "payment"
	StepReview              Step = "review"
	StepPaymentInstructions Step = "payment_instructions"
	StepCompleted           Step = "completed"
)

// Session is one checkout attempt. It is resumable: the customer can leave
// and come back, and re-entering an earlier step is allowed until the order
// is written.
type Session struct {
	ID   uuid.UUID `json:"id"`
	Step Step      `json:"step"`

	// exactly one of these identifies the owner
	UserID  *uint   `json:"user_id,omitempty"`
	GuestID *string `json:"guest_id,omitempty"`

	CustomerName  string        `json:"name"`
	CustomerEmail string        `json:"email"`
	CustomerPhone string        `json:"phone"`
	Address       order.Address `json:"shipping_address"`

	Method        *payment.Method `json:"payment_method,omitempty"`
	TransactionID *string         `json:"transaction_id,omitempty"`

	OrderID *string `json:"order_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ShippingInput is everything the shipping step requires. All fields are
// mandatory.
type ShippingInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// InstructionsPayload is returned instead of an order when a manual payment
// method still lacks its transaction id.
type InstructionsPayload struct {
	Method  payment.Method           `json:"method"`
	Account payment.ReceivingAccount `json:"account"`
	Steps   []string                 `json:"steps"`
	Amount  float64                  `json:"amount"`
}

// SubmitResult carries either the placed order or the instructions detour.
type SubmitResult struct {
	Order        *order.Order         `json:"order,omitempty"`
	Instructions *InstructionsPayload `json:"instructions,omitempty"`
}
