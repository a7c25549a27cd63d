package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sufishine-be/internal/logger"

	"go.uber.org/zap"
)

const defaultResendBaseURL = "https://api.resend.com"

type resendSender struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewResendSender talks to the Resend transactional email API with a bearer
// credential.
func NewResendSender(apiKey string) Sender {
	return &resendSender{
		apiKey:  apiKey,
		baseURL: defaultResendBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *resendSender) Send(ctx context.Context, e Email) (Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
	)

	body := map[string]any{
		"from":    e.From,
		"to":      []string{e.To},
		"subject": e.Subject,
		"html":    e.HTML,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/emails", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating email request", zap.Error(err))
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("email provider unreachable", zap.Error(err))
		return Result{}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("email provider rejected request",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return Result{}, fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// delivered but the response id is unreadable; treat as success
		log.Warn("unparseable provider response", zap.Error(err))
	}

	log.Info("email dispatched", zap.String("provider_id", parsed.ID))
	return Result{Success: true, ID: parsed.ID}, nil
}
