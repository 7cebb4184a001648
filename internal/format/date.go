package format

import (
	"strings"
	"time"

	"github.com/aleister1102/pdfwatch/internal/common/timeutils"
)

// Date renders a server timestamp as `dd.mm.yy, hh:mm:ss` in loc, wrapped in
// backticks for monospace display. Empty input renders as "". Values that do
// not parse are shown as received.
func Date(raw string, loc *time.Location) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}

	t, ok := timeutils.ParseTimestampOK(s)
	if !ok {
		return "`" + s + "`"
	}
	return "`" + t.In(loc).Format(timeutils.LayoutDisplayDE) + "`"
}
