package helpers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseInteger accepts any decimal number and truncates it toward zero,
// so "30", " 30 " and "30.9" all yield 30. Values outside the int range
// are rejected.
func ParseInteger(value string) (int, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || parsed < math.MinInt || parsed >= math.MaxInt {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return int(parsed), nil
}

// ParseLimit returns 0, meaning unbounded, for empty, unparsable or
// non-positive values.
func ParseLimit(value string) int {
	if value == "" {
		return 0
	}
	limit, err := ParseInteger(value)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
