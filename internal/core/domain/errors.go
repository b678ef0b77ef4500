package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
//
// Request validation failures are recoverable: the protocol layer maps them
// onto a wire response instead of dropping the connection.
type DomainError struct {
	Code    string // Error code (e.g., "MS-REQ-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Request Errors (REQ)
// ============================================================================

var (
	// ErrUnknownCommand indicates the line does not start with a known command token.
	ErrUnknownCommand = NewDomainError("MS-REQ-4000", "unknown command")

	// ErrKeyTooShort indicates the payload is shorter than the fixed key width.
	ErrKeyTooShort = NewDomainError("MS-REQ-4001", "key too short")

	// ErrValueTooLong indicates the message exceeds MaxMessageSize.
	ErrValueTooLong = NewDomainError("MS-REQ-4002", "message too long")

	// ErrTrailingData indicates a GET carried data after the key.
	ErrTrailingData = NewDomainError("MS-REQ-4003", "unexpected data after key")
)

// ============================================================================
// Store Errors (STORE)
// ============================================================================

var (
	// ErrKeyNotFound indicates the key holds no message.
	ErrKeyNotFound = NewDomainError("MS-STORE-4040", "key not found")

	// ErrKeyExists indicates a first-write-wins store already holds the key.
	ErrKeyExists = NewDomainError("MS-STORE-4090", "key already exists")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("MS-ARG-1001", "invalid argument")
)
