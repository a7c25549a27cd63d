package notification

import "context"

// Email is one outbound transactional message.
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Result reports the outcome of a send attempt. Fallback means nothing was
// actually delivered; the dispatcher only logged intent because no provider
// credential is configured. Never mistake it for delivery.
type Result struct {
	Success  bool   `json:"success"`
	Fallback bool   `json:"fallback,omitempty"`
	ID       string `json:"id,omitempty"`
}

// Sender submits a single email to a provider.
type Sender interface {
	Send(ctx context.Context, e Email) (Result, error)
}
