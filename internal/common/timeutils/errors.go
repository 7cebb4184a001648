package timeutils

import "errors"

var errEmptyTimestamp = errors.New("empty timestamp")
