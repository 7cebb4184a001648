package config

import (
	"time"
	_ "time/tzdata" // display zones must resolve on minimal images
)

// NotificationConfig defines configuration for notifications
type NotificationConfig struct {
	ChangeWebhookURL string `json:"change_webhook_url,omitempty" yaml:"change_webhook_url,omitempty" validate:"omitempty,url"`
	LogWebhookURL    string `json:"log_webhook_url,omitempty" yaml:"log_webhook_url,omitempty" validate:"omitempty,url"`
	BatchSize        int    `json:"batch_size,omitempty" yaml:"batch_size,omitempty" validate:"omitempty,min=1,max=25"`
	ChangeTitle      string `json:"change_title,omitempty" yaml:"change_title,omitempty" validate:"max=256"`
	LogTitle         string `json:"log_title,omitempty" yaml:"log_title,omitempty" validate:"max=256"`
	FooterText       string `json:"footer_text,omitempty" yaml:"footer_text,omitempty" validate:"max=2048"`
	Username         string `json:"username,omitempty" yaml:"username,omitempty"`
	EmbedColor       int    `json:"embed_color,omitempty" yaml:"embed_color,omitempty" validate:"min=0,max=16777215"`
	DisplayTimezone  string `json:"display_timezone,omitempty" yaml:"display_timezone,omitempty" validate:"omitempty,timezone"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		BatchSize:       DefaultNotificationBatchSize,
		ChangeTitle:     DefaultChangeTitle,
		LogTitle:        DefaultLogTitle,
		FooterText:      DefaultFooterText,
		EmbedColor:      DefaultEmbedColor,
		DisplayTimezone: DefaultDisplayTimezone,
	}
}

// Location returns the display time zone, or time.Local when unset or unknown.
func (nc NotificationConfig) Location() *time.Location {
	if nc.DisplayTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(nc.DisplayTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
