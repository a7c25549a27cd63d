package notification

import (
	"context"

	"sufishine-be/internal/logger"

	"go.uber.org/zap"
)

type fallbackSender struct{}

// NewFallbackSender is used when no provider credential is configured. It
// logs the intent and reports success with Fallback set, so development
// environments run without an email account. Nothing is delivered.
func NewFallbackSender() Sender {
	return &fallbackSender{}
}

func (s *fallbackSender) Send(ctx context.Context, e Email) (Result, error) {
	logger.FromCtx(ctx).Info("email fallback: provider not configured, logging only",
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
	)
	return Result{Success: true, Fallback: true}, nil
}
