package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseTimeout parses the TIMEOUT positional argument: an unsigned
// whole number of milliseconds in 0..4294967295. Invalid input is an
// expected condition and never panics.
func ParseTimeout(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ValidationError{
			Field:   "timeout",
			Message: "must be a number in 0..4294967295",
		}
	}
	return uint32(v), nil
}
