package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
	ErrBusinessRule = errors.New("business rule violation")
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Required returns a ValidationError reporting field as missing.
func Required(field string) *ValidationError {
	return NewValidationError(field, msgRequired)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AuthorizationError reports that an identified actor may not act on a resource.
// Messages carry identifiers; hiding resource existence is not a goal.
type AuthorizationError struct {
	ActorID    int64
	Resource   string
	ResourceID int64
	Reason     string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %d may not access %s %d: %s", e.ActorID, e.Resource, e.ResourceID, e.Reason)
}

// Is reports ErrForbidden so callers can match the whole authorization family.
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}

// ConflictError reports a uniqueness or state conflict on a resource.
type ConflictError struct {
	Resource   string
	ResourceID string
	Message    string
}

func (e *ConflictError) Error() string {
	if e.ResourceID == "" {
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s %s conflict: %s", e.Resource, e.ResourceID, e.Message)
}

// Is reports ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// DomainError is a business rule violation carrying a stable machine-readable
// code that upstream collaborators can switch on.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *DomainError) Unwrap() error {
	return ErrBusinessRule
}
