package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidName = errors.New("invalid name")
)

// maxNameLength bounds method and tag names.
const maxNameLength = 64

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateName checks a method or tag name before it is stored. Commas would
// split a tag into two, so they are refused for both kinds.
func validateName(name string, paramName string) error {
	if err := validateString(name, paramName); err != nil {
		return err
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: %s has surrounding spaces", ErrInvalidName, paramName)
	}
	if strings.Contains(name, ",") {
		return fmt.Errorf("%w: %s contains a comma", ErrInvalidName, paramName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidName, paramName, maxNameLength)
	}
	return nil
}

// ValidateName reports whether name can be stored as a method or tag.
func ValidateName(name string) error {
	return validateName(name, "name")
}
