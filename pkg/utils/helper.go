package utils

import (
	"time"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
