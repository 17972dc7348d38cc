package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVerificationID returns a verification ID like "A-12".
func FormatVerificationID(serie string, number uint32) string {
	return serie + "-" + strconv.FormatUint(uint64(number), 10)
}

// ParseVerificationID parses "A-12" into serie and number.
// The serie may itself contain dashes; the number follows the last one.
func ParseVerificationID(id string) (serie string, number uint32, err error) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return "", 0, fmt.Errorf("invalid verification ID format: %q", id)
	}

	n, err := strconv.ParseUint(id[i+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid number in verification ID %q: %w", id, err)
	}
	return id[:i], uint32(n), nil
}
