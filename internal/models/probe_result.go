package models

// ProbeResult is the outcome of one metadata probe.
//
// A probe never fails a run. When the transport fails, Metadata is empty and
// Err holds the cause so callers can log it; HTTP status codes are not
// failures and are only reported in StatusCode.
type ProbeResult struct {
	URL        string
	Metadata   FileMetadata
	StatusCode int
	Err        error
}

// Partial reports whether the probe could not reach the server.
func (r ProbeResult) Partial() bool {
	return r.Err != nil
}
