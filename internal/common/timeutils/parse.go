package timeutils

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp parses a server supplied timestamp such as a Last-Modified
// header. The HTTP date layouts are tried first, then a lenient parser that
// understands ISO 8601 and most human formats. Empty input is an error.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	if t, err := http.ParseTime(s); err == nil {
		return t, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// ParseTimestampOK is ParseTimestamp without the error detail.
func ParseTimestampOK(raw string) (time.Time, bool) {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
