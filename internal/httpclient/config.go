package httpclient

import (
	"time"

	"github.com/aleister1102/pdfwatch/internal/config"
)

// HTTPClientConfig holds configuration for the HTTP session
type HTTPClientConfig struct {
	Timeout             time.Duration     // Request timeout
	InsecureSkipVerify  bool              // Skip TLS verification
	MaxRedirects        int               // Maximum number of redirects to follow
	UserAgent           string            // User-Agent sent on every request
	CustomHeaders       map[string]string // Headers added to all requests
	MaxIdleConns        int               // Maximum idle connections
	MaxIdleConnsPerHost int               // Maximum idle connections per host
	IdleConnTimeout     time.Duration     // Idle connection timeout
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	DialTimeout         time.Duration     // Connection dial timeout
	KeepAlive           time.Duration     // Keep-alive duration
	EnableHTTP2         bool              // Enable HTTP/2 support
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		InsecureSkipVerify:  false,
		MaxRedirects:        5,
		UserAgent:           config.DefaultUserAgent,
		CustomHeaders:       map[string]string{},
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		EnableHTTP2:         true,
	}
}

// FromAppConfig maps the application HTTP section onto a client config
func FromAppConfig(cfg config.HTTPConfig) HTTPClientConfig {
	c := DefaultHTTPClientConfig()
	c.Timeout = cfg.Timeout()
	c.InsecureSkipVerify = cfg.InsecureSkipVerify
	c.EnableHTTP2 = cfg.EnableHTTP2
	if cfg.UserAgent != "" {
		c.UserAgent = cfg.UserAgent
	}
	return c
}
