package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a record does not exist on the backend.
var ErrNotFound = errors.New("record not found")

// ------------------------------
// Validation
// ------------------------------

const maxNameLen = 200

// ValidateIDPresent rejects empty identifiers before a request is built.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateName rejects empty or oversized display names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be empty")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name exceeds %d characters", maxNameLen)
	}
	return nil
}

// ValidateLimit rejects non-positive page and search limits.
func ValidateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d", limit)
	}
	return nil
}
