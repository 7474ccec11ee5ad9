package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Header errors
	ErrHeaderEmpty   ErrorCode = "HEADER_EMPTY"
	ErrHeaderInvalid ErrorCode = "HEADER_INVALID"

	// Pipeline errors
	ErrUnsupportedType   ErrorCode = "UNSUPPORTED_TYPE"
	ErrMalformedPreamble ErrorCode = "MALFORMED_PREAMBLE"
	ErrRenderMismatch    ErrorCode = "RENDER_MISMATCH"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// HeaderError represents a structured error with code and details
type HeaderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HeaderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HeaderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HeaderError) Is(target error) bool {
	var targetErr *HeaderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HeaderError with the given code and message
func New(code ErrorCode, message string) *HeaderError {
	return &HeaderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HeaderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HeaderError {
	return &HeaderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HeaderError
func Wrap(err error, code ErrorCode, message string) *HeaderError {
	if err == nil {
		return nil
	}
	return &HeaderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HeaderError {
	if err == nil {
		return nil
	}
	return &HeaderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HeaderError) WithDetail(key string, value interface{}) *HeaderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var headerErr *HeaderError
	if errors.As(err, &headerErr) {
		return headerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HeaderError
func GetErrorCode(err error) ErrorCode {
	var headerErr *HeaderError
	if errors.As(err, &headerErr) {
		return headerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HeaderError
func GetErrorDetails(err error) map[string]interface{} {
	var headerErr *HeaderError
	if errors.As(err, &headerErr) {
		return headerErr.Details
	}
	return nil
}
