package errors

import (
	"strings"
)

// ValidateRequired returns an INVALID_ARGUMENT error if value is empty or
// only whitespace. field names the argument in the message.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidArgument, "%s is required", field)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidArgument, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidArgument, "URL must use http or https scheme")
	}

	return nil
}
