package notification

import (
	"testing"

	"sufishine-be/internal/order"
	"sufishine-be/internal/payment"
	"sufishine-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *order.Order {
	return &order.Order{
		ID:            "o1",
		OrderNumber:   "ORD-20260830-101500-0042",
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		Items: []order.Item{
			{ID: "p1", Name: "Herbal Soap", Price: 1500, Quantity: 1},
			{ID: "p2", Name: "Rose Water", Price: 850, Quantity: 2},
		},
		Subtotal:       3200,
		ShippingCharge: 200,
		TotalAmount:    3400,
		PaymentMethod:  payment.MethodJazzCash,
		ShippingAddress: order.Address{
			Address: "House 12, Street 4", City: "Lahore",
			PostalCode: "54000", Country: "Pakistan",
		},
	}
}

func TestFormatRs(t *testing.T) {
	assert.Equal(t, "Rs 1,700", FormatRs(1700))
	assert.Equal(t, "Rs 200", FormatRs(200))
	assert.Equal(t, "Rs 1,234,500", FormatRs(1234500))
	assert.Equal(t, "Rs 750.50", FormatRs(750.50))
	assert.Equal(t, "Rs 0", FormatRs(0))
}

func TestTrackingURL(t *testing.T) {
	url := TrackingURL("https://www.leopardscourier.com", "LE 123/456")
	assert.Equal(t, "https://www.leopardscourier.com/track/?consignmentNo=LE+123%2F456", url)

	// trailing slash on the base must not double up
	url = TrackingURL("https://carrier.example/", "ABC")
	assert.Equal(t, "https://carrier.example/track/?consignmentNo=ABC", url)
}

func TestBuildConfirmationHTML(t *testing.T) {
	html, err := buildConfirmationHTML(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, html, "ORD-20260830-101500-0042")
	assert.Contains(t, html, "Herbal Soap")
	assert.Contains(t, html, "Rose Water")
	assert.Contains(t, html, "Rs 3,400")
	assert.Contains(t, html, "Lahore")
	assert.Contains(t, html, "JazzCash")
	// instructions are fully substituted
	assert.NotContains(t, html, "{{")
}

func TestBuildShipmentHTML(t *testing.T) {
	o := sampleOrder()
	o.TrackingID = utils.StrPtr("LE-998877")

	html, err := buildShipmentHTML(o, "https://www.leopardscourier.com")
	require.NoError(t, err)

	assert.Contains(t, html, "LE-998877")
	assert.Contains(t, html, "consignmentNo=LE-998877")
	assert.Contains(t, html, "Ayesha Khan")
}
