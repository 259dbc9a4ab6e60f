package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneKey validates a scene key.
//
// Keys identify a scene among its siblings and travel through URLs, store
// keys and DOT identifiers, so the rules are conservative:
//   - No empty keys
//   - No control characters or whitespace
//   - No slashes (keys are path segments in the HTTP host)
//   - Maximum length of 128 characters
func ValidateSceneKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "scene key cannot be empty")
	}

	if len(key) > 128 {
		return New(ErrCodeInvalidInput, "scene key too long (max 128 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "scene key %q contains whitespace or control characters", key)
		}
	}

	if strings.ContainsAny(key, "/\\") {
		return New(ErrCodeInvalidInput, "scene key %q cannot contain slashes", key)
	}

	return nil
}

// ValidatePath validates a flow or state file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}
