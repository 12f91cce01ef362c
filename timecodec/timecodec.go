// Package timecodec converts between ISO-8601 timestamps and the unix
// seconds carried by the T dimension of a BST-ID.
package timecodec

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"

	"github.com/arloliu/bstid/errs"
)

// Layout is the output format of FromUnix: RFC3339 in UTC with second precision.
const Layout = "2006-01-02T15:04:05Z"

// ToUnix parses an RFC3339 timestamp such as "2025-05-21T15:00:00Z" and
// returns unix seconds. Any offset is honored; fractional seconds are
// truncated.
func ToUnix(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidTimestamp, s, err)
	}

	return t.Unix(), nil
}

// ParseLenient accepts the layouts understood by dateparse, for example
// "2025-05-21 15:00:00", "2025/05/21 15:00" or a bare unix timestamp.
// Values without a zone are read as UTC.
func ParseLenient(s string) (int64, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidTimestamp, s, err)
	}

	return t.Unix(), nil
}

// FromUnix formats unix seconds as a UTC timestamp, for example
// "2025-05-21T15:00:00Z".
func FromUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(Layout)
}

// FromUnixFloat formats a decoded T coordinate, rounded to the nearest second.
func FromUnixFloat(sec float64) string {
	return FromUnix(int64(math.Round(sec)))
}
