package config

import "time"

// HTTPConfig defines configuration for the outbound HTTP session
type HTTPConfig struct {
	TimeoutSeconds      int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	UserAgent           string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify  bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2         bool   `json:"enable_http2" yaml:"enable_http2"`
	MaxPageSizeBytes    int64  `json:"max_page_size_bytes,omitempty" yaml:"max_page_size_bytes,omitempty" validate:"omitempty,min=1"`
	MaxConcurrentProbes int    `json:"max_concurrent_probes,omitempty" yaml:"max_concurrent_probes,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultHTTPConfig creates default HTTP configuration
func NewDefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		TimeoutSeconds:      DefaultHTTPTimeoutSecs,
		UserAgent:           DefaultUserAgent,
		InsecureSkipVerify:  false,
		EnableHTTP2:         true,
		MaxPageSizeBytes:    DefaultMaxPageSizeBytes,
		MaxConcurrentProbes: DefaultMaxConcurrentProbe,
	}
}

// Timeout returns the per request timeout, falling back to the default.
func (hc HTTPConfig) Timeout() time.Duration {
	if hc.TimeoutSeconds <= 0 {
		return DefaultHTTPTimeoutSecs * time.Second
	}
	return time.Duration(hc.TimeoutSeconds) * time.Second
}
