package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput     = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON    = errors.New("invalid JSON format")
	ErrMultipleJSON   = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrSourceNotFound = errors.New("source directory not found")
	ErrNotADirectory  = errors.New("source path is not a directory")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeMerge   ErrorType = "merge"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to reading source files or directories
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewMergeError creates a new error related to combining documents
func NewMergeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMerge,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing the merged result
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// IsParsing reports whether err is a parsing-type error. Parsing errors are
// recoverable per file: the aggregators skip the file and keep going, while
// every other error type aborts the run.
func IsParsing(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeParsing
	}
	return false
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeMerge:
			return fmt.Sprintf("Merge error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON document per file."
	}
	if errors.Is(err, ErrSourceNotFound) {
		return "Error: The source directory could not be found. Please check the path."
	}
	if errors.Is(err, ErrNotADirectory) {
		return "Error: The source path is not a directory."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
