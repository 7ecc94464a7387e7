package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/herdbook/internal/config"
)

// Client exposes the outbound reminder push used by the scheduler.
type Client interface {
	SendReminder(ctx context.Context, req SendReminderRequest) (*SendReminderResponse, error)
}

// WebhookClient is a resty-backed implementation of Client posting reminders
// to a configured webhook endpoint.
type WebhookClient struct {
	httpClient *resty.Client
}

// NewClient builds a webhook notify client using the provided configuration
// values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.WebhookURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &WebhookClient{httpClient: restyClient}
}

// SendReminderRequest represents a reminder push payload.
type SendReminderRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SendReminderResponse mirrors a successful webhook acknowledgement.
type SendReminderResponse struct {
	ID string `json:"id"`
}

// apiError represents an error payload returned by the webhook endpoint.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendReminder posts the reminder to the webhook endpoint.
func (c *WebhookClient) SendReminder(ctx context.Context, req SendReminderRequest) (*SendReminderResponse, error) {
	result := new(SendReminderResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("send reminder: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := ""
		code := resp.StatusCode()
		if apiErr != nil {
			message = apiErr.Error.Message
			if apiErr.Error.Code != 0 {
				code = apiErr.Error.Code
			}
		}
		return nil, fmt.Errorf("notify webhook error: code=%d, message=%s", code, message)
	}

	return result, nil
}
