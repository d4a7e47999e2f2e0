package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read source directory",
				Err:     errors.New("permission denied"),
			},
			expected: "input: failed to read source directory: permission denied",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeOutput,
		Message: "test message",
		Err:     wrappedErr,
	}

	assert.Equal(t, wrappedErr, appErr.Unwrap())
}

func TestAppError_Is(t *testing.T) {
	inputErr := NewInputError("one", nil)
	otherInputErr := NewInputError("two", errors.New("cause"))
	parsingErr := NewParsingError("three", nil)

	assert.True(t, errors.Is(inputErr, otherInputErr))
	assert.False(t, errors.Is(inputErr, parsingErr))
}

func TestAppError_SentinelUnwrapping(t *testing.T) {
	err := NewInputError("source directory 'x' not found", ErrSourceNotFound)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
	assert.False(t, errors.Is(err, ErrNotADirectory))
}

func TestIsParsing(t *testing.T) {
	assert.True(t, IsParsing(NewParsingError("bad JSON", ErrInvalidJSON)))
	assert.False(t, IsParsing(NewInputError("missing dir", nil)))
	assert.False(t, IsParsing(errors.New("plain error")))
	assert.False(t, IsParsing(nil))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("source directory 'plans' not found", nil),
			expected: "Input error: source directory 'plans' not found",
		},
		{
			name:     "parsing error",
			err:      NewParsingError("JSON syntax error at offset 3", ErrInvalidJSON),
			expected: "JSON parsing error: JSON syntax error at offset 3",
		},
		{
			name:     "merge error",
			err:      NewMergeError("failed to deep-merge documents", nil),
			expected: "Merge error: failed to deep-merge documents",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to create output file 'out.json'", nil),
			expected: "Output error: failed to create output file 'out.json'",
		},
		{
			name:     "bare sentinel",
			err:      ErrSourceNotFound,
			expected: "Error: The source directory could not be found. Please check the path.",
		},
		{
			name:     "unknown error",
			err:      errors.New("something odd"),
			expected: "Error: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
