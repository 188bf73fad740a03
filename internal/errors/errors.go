// Package errors provides a lightweight structured error type (ConvertError)
// for category-based classification and exit code mapping in the CLI.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a conversion error for classification
type ErrorCategory string

const (
	// User-facing input errors
	CategoryTarget     ErrorCategory = "target"
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Processing errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ConvertError is a structured error with category, severity and context
type ConvertError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ConvertError
type ContextFields map[string]any

// Error implements the error interface
func (e *ConvertError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for errors.Is / errors.As
func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ConvertError) WithContext(key string, value any) *ConvertError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ConvertError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ConvertError {
	return &ConvertError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ConvertError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ConvertError {
	return &ConvertError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the first ConvertError in err's chain.
func As(err error) (*ConvertError, bool) {
	var ce *ConvertError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := As(err); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ConvertError
func GetCategory(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return CategoryInternal
}
