package discord

import (
	"context"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/rs/zerolog"
)

// JSONPoster posts a JSON document.
type JSONPoster interface {
	PostJSON(ctx context.Context, target string, payload any) (*httpclient.HTTPResponse, error)
}

// WebhookClient delivers message payloads to one Discord webhook.
type WebhookClient struct {
	poster     JSONPoster
	webhookURL string
	logger     zerolog.Logger
}

// NewWebhookClient creates a client for webhookURL.
func NewWebhookClient(poster JSONPoster, webhookURL string, logger zerolog.Logger) *WebhookClient {
	return &WebhookClient{
		poster:     poster,
		webhookURL: webhookURL,
		logger:     logger.With().Str("module", "DiscordWebhook").Logger(),
	}
}

// Enabled reports whether a webhook URL is configured.
func (c *WebhookClient) Enabled() bool {
	return strings.TrimSpace(c.webhookURL) != ""
}

// Send posts payload. A non-2xx answer is returned as an HTTPError.
func (c *WebhookClient) Send(ctx context.Context, payload DiscordMessagePayload) error {
	if !c.Enabled() {
		c.logger.Debug().Msg("Webhook URL is empty, skipping Discord notification")
		return nil
	}

	resp, err := c.poster.PostJSON(ctx, c.webhookURL, payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to send Discord notification")
	}
	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body))
		c.logger.Error().Int("status_code", resp.StatusCode).Str("response_body", body).Msg("Discord webhook failed")
		// the webhook URL carries its token, so it is left out of the error
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "discord webhook failed: "+body, "")
	}

	c.logger.Debug().Int("status_code", resp.StatusCode).Int("embeds", len(payload.Embeds)).Msg("Discord notification sent")
	return nil
}
