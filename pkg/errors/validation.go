package errors

import (
	"unicode"
)

// ValidateTargetName validates a target name from a build file.
// Names key the finalized target map and appear in shell-adjacent
// contexts (logs, graph exports), so the rules are conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Format-specific restrictions (e.g. reserved words) are enforced by the
// individual front ends.
func ValidateTargetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTarget, "target name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidTarget, "target name too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidTarget, "target name contains invalid control characters")
		}
	}

	return nil
}
