package notification

import (
	"context"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/order"

	"go.uber.org/zap"
)

// Dispatcher formats and sends the two customer emails this system knows:
// order confirmation and shipment dispatched. Callers treat every failure
// as non-fatal to their own operation.
type Dispatcher struct {
	sender       Sender
	from         string
	trackingBase string
}

// NewDispatcher picks the live provider when an API key is configured and
// the log-only fallback otherwise.
func NewDispatcher(apiKey, from, trackingBase string) *Dispatcher {
	var sender Sender
	if apiKey != "" {
		sender = NewResendSender(apiKey)
	} else {
		logger.L().Warn("RESEND_API_KEY not set, email dispatcher in fallback mode")
		sender = NewFallbackSender()
	}

	return &Dispatcher{sender: sender, from: from, trackingBase: trackingBase}
}

// NewDispatcherWithSender is for tests and custom wiring.
func NewDispatcherWithSender(sender Sender, from, trackingBase string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from, trackingBase: trackingBase}
}

func (d *Dispatcher) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	html, err := buildConfirmationHTML(o)
	if err != nil {
		return err
	}

	return d.send(ctx, o, Email{
		From:    d.from,
		To:      o.CustomerEmail,
		Subject: "Order confirmed - " + o.OrderNumber,
		HTML:    html,
	})
}

func (d *Dispatcher) SendShipmentDispatched(ctx context.Context, o *order.Order) error {
	html, err := buildShipmentHTML(o, d.trackingBase)
	if err != nil {
		return err
	}

	return d.send(ctx, o, Email{
		From:    d.from,
		To:      o.CustomerEmail,
		Subject: "Your order has shipped - " + o.OrderNumber,
		HTML:    html,
	})
}

func (d *Dispatcher) send(ctx context.Context, o *order.Order, e Email) error {
	res, err := d.sender.Send(ctx, e)
	if err != nil {
		return err
	}

	if res.Fallback {
		logger.FromCtx(ctx).Info("email recorded in fallback mode, not delivered",
			zap.String("order_number", o.OrderNumber),
		)
	}
	return nil
}
