package token

import (
	"fmt"
	"time"
)

// Timestamp decodes the payload of a ts"..." literal as RFC 3339: date,
// time, optional fractional seconds up to nanoseconds, and a mandatory
// UTC offset or Z.
func Timestamp(payload string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, payload)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrBadTimestamp, payload, err)
	}
	return t, nil
}
