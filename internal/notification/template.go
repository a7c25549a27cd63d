package notification

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"sufishine-be/internal/order"
	"sufishine-be/internal/payment"
)

// FormatRs renders an amount the way the storefront shows it: "Rs 1,700".
func FormatRs(amount float64) string {
	whole := int64(amount)
	frac := amount - float64(whole)

	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "Rs " + strings.Join(parts, ",")
	if frac > 0.004 {
		out += fmt.Sprintf(".%02d", int(frac*100+0.5))
	}
	return out
}

// TrackingURL builds the public carrier tracking link for a consignment.
func TrackingURL(base, trackingID string) string {
	return strings.TrimRight(base, "/") + "/track/?consignmentNo=" + url.QueryEscape(trackingID)
}

var tmplFuncs = template.FuncMap{
	"rs": FormatRs,
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order!</h2>
  <p>Hi {{.Order.CustomerName}}, we received your order <strong>{{.Order.OrderNumber}}</strong>.</p>

  <table width="100%" cellpadding="6" style="border-collapse: collapse;">
    <tr style="background: #f5f5f5;">
      <th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th>
    </tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Name}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">{{rs .Price}}</td>
    </tr>
    {{end}}
  </table>

  <p>
    Subtotal: {{rs .Order.Subtotal}}<br>
    Shipping: {{rs .Order.ShippingCharge}}<br>
    <strong>Total: {{rs .Order.TotalAmount}}</strong>
  </p>

  <p>
    <strong>Delivery address</strong><br>
    {{.Order.ShippingAddress.Address}}<br>
    {{.Order.ShippingAddress.City}} {{.Order.ShippingAddress.PostalCode}}<br>
    {{.Order.ShippingAddress.Country}}
  </p>

  <p><strong>Payment: {{.MethodLabel}}</strong></p>
  <ol>
    {{range .Instructions}}<li>{{.}}</li>{{end}}
  </ol>

  <p>SUFI SHINE</p>
</body>
</html>`))

var shipmentTmpl = template.Must(template.New("shipment").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your order is on its way!</h2>
  <p>Hi {{.Order.CustomerName}}, order <strong>{{.Order.OrderNumber}}</strong> has been dispatched.</p>

  <p>
    Tracking number: <strong>{{.TrackingID}}</strong><br>
    <a href="{{.TrackingURL}}">Track your parcel</a>
  </p>

  <p>
    <strong>Delivery address</strong><br>
    {{.Order.ShippingAddress.Address}}<br>
    {{.Order.ShippingAddress.City}} {{.Order.ShippingAddress.PostalCode}}<br>
    {{.Order.ShippingAddress.Country}}
  </p>

  <p>SUFI SHINE</p>
</body>
</html>`))

func buildConfirmationHTML(o *order.Order) (string, error) {
	data := struct {
		Order        *order.Order
		MethodLabel  string
		Instructions []string
	}{
		Order:        o,
		MethodLabel:  o.PaymentMethod.Label(),
		Instructions: payment.InstructionsFor(o.PaymentMethod, o.OrderNumber, FormatRs(o.TotalAmount)),
	}

	var sb strings.Builder
	if err := confirmationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func buildShipmentHTML(o *order.Order, trackingBase string) (string, error) {
	trackingID := ""
	if o.TrackingID != nil {
		trackingID = *o.TrackingID
	}

	data := struct {
		Order       *order.Order
		TrackingID  string
		TrackingURL string
	}{
		Order:       o,
		TrackingID:  trackingID,
		TrackingURL: TrackingURL(trackingBase, trackingID),
	}

	var sb strings.Builder
	if err := shipmentTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
