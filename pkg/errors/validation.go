package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateRequired rejects blank values for a required form field.
// This is the upstream check the graph core relies on: the core itself
// accepts any string, including empty ones.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidInput, "%s is required", field)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidatePath validates a local file path supplied on the command line or
// in configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of allowed (case-insensitive).
func ValidateFormat(format string, allowed ...string) error {
	if slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, format) }) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of: %s)", format, strings.Join(allowed, ", "))
}
