package errors

import (
	"strings"
	"unicode"
)

// reservedModuleChars are the grammar delimiters a name can never contain.
const reservedModuleChars = "<>[]-"

// ValidateModuleName checks that name can appear as a module or floor
// reference inside grammar text: non-empty, no delimiters, no whitespace.
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "module name cannot be empty")
	}
	if i := strings.IndexAny(name, reservedModuleChars); i >= 0 {
		return New(ErrCodeInvalidInput, "module name %q contains reserved character %q", name, name[i])
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "module name %q contains whitespace or control characters", name)
		}
	}
	return nil
}

// ValidatePath validates a user-supplied file path for CLI and API use.
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
