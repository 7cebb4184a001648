package extractor

import (
	"net/url"
	"strings"
)

// resolveReference turns href into an absolute http(s) URL. Absolute
// references are returned as written so stored URLs stay comparable across
// runs; relative ones are resolved against base.
func resolveReference(base *url.URL, href string) (string, bool) {
	trimmed := strings.TrimSpace(href)
	ref, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}

	var abs *url.URL
	switch {
	case ref.IsAbs():
		abs = ref
	case base != nil:
		abs = base.ResolveReference(ref)
	default:
		return "", false
	}

	switch strings.ToLower(abs.Scheme) {
	case "http", "https":
	default:
		return "", false
	}
	if abs.Host == "" {
		return "", false
	}
	if ref.IsAbs() {
		return trimmed, true
	}
	return abs.String(), true
}
