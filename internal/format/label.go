package format

import (
	"net/url"
	"path"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/models"
)

// DisplayName picks the captured label, falling back to the decoded last path
// segment of the URL and finally the URL itself.
func DisplayName(r models.FileRecord) string {
	if name := strings.TrimSpace(r.Label); name != "" {
		return name
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return r.URL
	}

	segment := u.EscapedPath()
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if segment == "" {
		return r.URL
	}
	if decoded, err := url.PathUnescape(segment); err == nil {
		return decoded
	}
	return path.Base(u.Path)
}

// Label renders a record as a markdown link.
func Label(r models.FileRecord) string {
	return "[" + DisplayName(r) + "](" + r.URL + ")"
}
