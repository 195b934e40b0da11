package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// MalformedWorldError reports a game model that violates construction
// invariants (missing or duplicated Waldo/Base/Ship, items off the grid).
// It is a programming or input error, never a planning-time condition.
type MalformedWorldError struct {
	*DomainError
	Reason string
}

func NewMalformedWorldError(reason string) *MalformedWorldError {
	return &MalformedWorldError{
		DomainError: &DomainError{Message: fmt.Sprintf("malformed world: %s", reason)},
		Reason:      reason,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
