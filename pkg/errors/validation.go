package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates an output or script file path supplied on the
// command line or typed into the editor's command palette.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateFormat checks that format is one of the supported output formats.
// The comparison is case-sensitive; callers normalize input first.
func ValidateFormat(format string, valid map[string]bool) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !valid[format] {
		return New(ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
	return nil
}

// ValidateFormats runs [ValidateFormat] over every entry and returns the
// first failure.
func ValidateFormats(formats []string, valid map[string]bool) error {
	for _, f := range formats {
		if err := ValidateFormat(f, valid); err != nil {
			return err
		}
	}
	return nil
}
