package errors

import (
	"strings"
	"unicode"
)

// ValidateSourceID validates a source ID for safety. IDs appear in cache
// keys, store documents and data file paths, so traversal sequences and
// control characters are rejected outright.
func ValidateSourceID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSource, "source id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidSource, "source id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSource, "source id contains control characters")
		}
	}

	dangerous := []string{
		"..",
		"/",
		"\\",
		"\x00",
	}
	for _, pattern := range dangerous {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidSource, "source id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateDataFilename validates a raw data filename. It must be a simple
// basename resolved under the configured data directory, never a path.
func ValidateDataFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "data filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "data filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "data filename cannot be a hidden file")
	}

	if len(filename) > 256 {
		return New(ErrCodeInvalidPath, "data filename too long (max 256 characters)")
	}

	return nil
}

// ValidateNDigits bounds the requested digit count so one request can't
// ask for an effectively unbounded generation.
func ValidateNDigits(n int) error {
	const maxDigits = 1_000_000
	if n < 0 {
		return New(ErrCodeInvalidInput, "n_digits cannot be negative")
	}
	if n > maxDigits {
		return New(ErrCodeInvalidInput, "n_digits too large (max %d)", maxDigits)
	}
	return nil
}
