package gradient

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known error categories of the gradient domain.
type ErrorCode string

const (
	ErrCodeInvalidColour ErrorCode = "INVALID_COLOUR"
	ErrCodeInvalidAngle  ErrorCode = "INVALID_ANGLE"
	ErrCodeInvalidPolicy ErrorCode = "INVALID_POLICY"
)

// DomainError is a typed error carrying the offending value.
type DomainError struct {
	Code    ErrorCode
	Message string
	Value   string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any DomainError with the same code, so callers can compare
// against the exported sentinels.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code
}

var (
	ErrInvalidColour = &DomainError{Code: ErrCodeInvalidColour, Message: "colour must be # followed by six hex digits"}
	ErrInvalidAngle  = &DomainError{Code: ErrCodeInvalidAngle, Message: "angle must be between 0 and 360"}
	ErrInvalidPolicy = &DomainError{Code: ErrCodeInvalidPolicy, Message: "unknown feedback policy"}
)

func newDomainError(base *DomainError, value string) *DomainError {
	return &DomainError{Code: base.Code, Message: base.Message, Value: value}
}
