package order

import (
	"time"

	"sufishine-be/internal/payment"
)

// Address is the delivery destination captured at checkout. It is embedded
// in the order row, not a reference to a stored address book entry.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Item is a snapshotted cart line. Immutable once the order is written;
// later catalog edits never change what the customer bought.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// Order is the durable record written once at checkout completion. The
// customer fields are a snapshot, not a live profile reference; UserID is
// nil for guest orders.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	UserID      *uint  `json:"user_id,omitempty"`

	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	CustomerPhone string `json:"phone"`

	Items []Item `json:"items"`

	Subtotal       float64 `json:"subtotal"`
	ShippingCharge float64 `json:"shipping_charge"`
	TotalAmount    float64 `json:"total_amount"`

	PaymentMethod payment.Method `json:"payment_method"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	Status        Status         `json:"status"`

	TransactionID  *string `json:"transaction_id,omitempty"`
	TrackingID     *string `json:"tracking_id,omitempty"`
	TrackingStatus *string `json:"tracking_status,omitempty"`
	DeliveryNotes  *string `json:"delivery_notes,omitempty"`

	ShippingAddress Address `json:"shipping_address"`

	ShippedAt *time.Time `json:"shipped_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ListFilter narrows admin and customer order listings.
type ListFilter struct {
	Status *Status
	Search *string // matches order_number or customer email
	UserID *uint
}
