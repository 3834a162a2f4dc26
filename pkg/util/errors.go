// Package util provides logging, error types, and subnet math shared
// across the config generator.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for data-plan and rendering failures
var (
	ErrInvalidSubnet    = errors.New("invalid subnet descriptor")
	ErrMalformedBFDSpec = errors.New("malformed BFD spec")
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("link not found")
)

// InvalidSubnetError reports a subnet descriptor that could not be parsed.
// Fatal for the whole run: no safe fallback address exists.
type InvalidSubnetError struct {
	Subnet string
	Err    error
}

func (e *InvalidSubnetError) Error() string {
	return fmt.Sprintf("invalid subnet %q: %v", e.Subnet, e.Err)
}

func (e *InvalidSubnetError) Unwrap() error {
	return ErrInvalidSubnet
}

// NewInvalidSubnetError creates an invalid-subnet error
func NewInvalidSubnetError(subnet string, err error) *InvalidSubnetError {
	return &InvalidSubnetError{Subnet: subnet, Err: err}
}

// MalformedBFDSpecError reports a BFD field that does not split into
// exactly three slash-separated parts (tx/rx/multiplier).
type MalformedBFDSpecError struct {
	Spec string
}

func (e *MalformedBFDSpecError) Error() string {
	return fmt.Sprintf("BFD spec %q must be tx/rx/multiplier (three slash-separated values)", e.Spec)
}

func (e *MalformedBFDSpecError) Unwrap() error {
	return ErrMalformedBFDSpec
}

// NewMalformedBFDSpecError creates a malformed-BFD-spec error
func NewMalformedBFDSpecError(spec string) *MalformedBFDSpecError {
	return &MalformedBFDSpecError{Spec: spec}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
