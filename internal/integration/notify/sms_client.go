package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// SMSClient implements the adapter.SMSSender interface against an HTTP
// SMS gateway. The gateway accepts a JSON POST and responds 2xx on
// acceptance.
type SMSClient struct {
	gatewayURL string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

// NewSMSClient creates a new SMS gateway client.
func NewSMSClient(gatewayURL, apiKey, senderID string, requestTimeout time.Duration) *SMSClient {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &SMSClient{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		senderID:   senderID,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type smsRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id"`
}

// Send posts the message to the gateway.
func (c *SMSClient) Send(ctx context.Context, toPhoneNumber, message string) error {
	if c.gatewayURL == "" {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeSMSGatewayNotConfigured,
			"sms gateway not configured",
			domainerror.ErrSMSGatewayNotConfigured,
		)
	}

	payload, err := json.Marshal(smsRequest{
		To:       toPhoneNumber,
		Message:  message,
		SenderID: c.senderID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"sms gateway unreachable",
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	gatewayErr := fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(body))

	// 4xx means the request itself is broken; retrying cannot help.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return domainerror.NewNotificationError(
			domainerror.ErrCodePermanentDeliveryFailure,
			"sms rejected by gateway",
			gatewayErr,
		)
	}
	return domainerror.NewNotificationError(
		domainerror.ErrCodeTemporaryDeliveryFailure,
		"sms delivery failed",
		gatewayErr,
	)
}

var _ adapter.SMSSender = (*SMSClient)(nil)
