package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"
)

// HTTPClient is a cookie carrying HTTP session. Cookies set by any response
// are replayed on later requests to the same site, so a login performed with
// PostForm authorises the following Get and Head calls.
type HTTPClient struct {
	follow     *http.Client // follows redirects
	noRedirect *http.Client // returns the first response as is
	jar        http.CookieJar
	config     HTTPClientConfig
	logger     zerolog.Logger
}

// NewHTTPClient creates a new HTTP session with the given configuration
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create cookie jar")
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	maxRedirects := config.MaxRedirects
	follow := &http.Client{
		Transport: transport,
		Jar:       jar,
		Timeout:   config.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	noRedirect := &http.Client{
		Transport: transport,
		Jar:       jar,
		Timeout:   config.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		follow:     follow,
		noRedirect: noRedirect,
		jar:        jar,
		config:     config,
		logger:     logger,
	}, nil
}

// Cookies returns the cookies the session would send to rawURL.
func (c *HTTPClient) Cookies(rawURL string) []*http.Cookie {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.jar.Cookies(u)
}

// PostForm submits a URL encoded form without following redirects.
func (c *HTTPClient) PostForm(ctx context.Context, target string, form url.Values) (*HTTPResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(c.noRedirect, req, 0)
}

// Get fetches target following redirects. The body is read up to maxBytes
// when maxBytes is positive; Truncated reports whether anything was cut.
func (c *HTTPClient) Get(ctx context.Context, target string, maxBytes int64) (*HTTPResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	return c.do(c.follow, req, maxBytes)
}

// Head issues a HEAD request following redirects. Any status code is
// returned as a response; only transport failures are errors.
func (c *HTTPClient) Head(ctx context.Context, target string) (*HTTPResponse, error) {
	req, err := c.newRequest(ctx, http.MethodHead, target, nil)
	if err != nil {
		return nil, err
	}
	return c.do(c.follow, req, 0)
}

// PostJSON marshals payload and posts it as application/json.
func (c *HTTPClient) PostJSON(ctx context.Context, target string, payload any) (*HTTPResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal JSON payload")
	}
	req, err := c.newRequest(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(c.follow, req, 64*1024)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errorwrapper.WrapErrorf(err, "failed to create %s request for %s", method, target)
	}

	for key, value := range c.config.CustomHeaders {
		req.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "*/*")
	}
	return req, nil
}

func (c *HTTPClient) do(client *http.Client, req *http.Request, maxBytes int64) (*HTTPResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(req.URL.String(), req.Method+" request failed", err)
	}
	defer resp.Body.Close()

	result := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		FinalURL:   resp.Request.URL.String(),
	}

	if req.Method == http.MethodHead {
		return result, nil
	}

	reader := io.Reader(resp.Body)
	if maxBytes > 0 {
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(req.URL.String(), "failed to read response body", err)
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		body = body[:maxBytes]
		result.Truncated = true
	}
	result.Body = body

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status_code", resp.StatusCode).
		Int("size", len(body)).
		Msg("HTTP request completed")

	return result, nil
}
