package httpclient

import (
	"net/http"
)

// HTTPResponse is a fully read response.
type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	FinalURL   string
	Truncated  bool
}

// IsSuccess reports a 2xx status.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsSuccessOrRedirect reports a 2xx or 3xx status.
func (r *HTTPResponse) IsSuccessOrRedirect() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}
