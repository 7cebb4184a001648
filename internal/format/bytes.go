package format

import (
	"math"
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB"}

// Bytes renders a byte count with binary (1024) units.
// Values below 10 in any unit above bytes keep one decimal, everything else
// is rounded to an integer. A nil or zero size renders as "".
func Bytes(n *int64) string {
	if n == nil || *n == 0 {
		return ""
	}

	v := float64(*n)
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}

	var num string
	if v < 10 && i > 0 {
		num = strconv.FormatFloat(v, 'f', 1, 64)
		num = strings.TrimSuffix(num, ".0")
	} else {
		num = strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return num + " " + byteUnits[i]
}
