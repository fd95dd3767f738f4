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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Output errors
	ErrWrite ErrorCode = "WRITE"

	// Frame misuse errors. These indicate a broken nesting discipline in
	// the caller, never an environmental failure.
	ErrFrameOrder   ErrorCode = "FRAME_ORDER"
	ErrFrameClosed  ErrorCode = "FRAME_CLOSED"
	ErrFrameRoot    ErrorCode = "FRAME_ROOT"
	ErrFrameAliased ErrorCode = "FRAME_ALIASED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Input document errors
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrInputParse  ErrorCode = "INPUT_PARSE"
	ErrInputFormat ErrorCode = "INPUT_FORMAT"

	// Presentation errors
	ErrStyleLoad     ErrorCode = "STYLE_LOAD"
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// IndentError represents a structured error with code and details
type IndentError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IndentError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IndentError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *IndentError) Is(target error) bool {
	var targetErr *IndentError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an IndentError with the given code and message
func New(code ErrorCode, message string) *IndentError {
	return &IndentError{Code: code, Message: message}
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IndentError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *IndentError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IndentError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records a key/value describing the failure, such as the path
// or key involved
func (e *IndentError) WithDetail(key string, value interface{}) *IndentError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var indentErr *IndentError
	if errors.As(err, &indentErr) {
		return indentErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IndentError
func GetErrorCode(err error) ErrorCode {
	var indentErr *IndentError
	if errors.As(err, &indentErr) {
		return indentErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IndentError
func GetErrorDetails(err error) map[string]interface{} {
	var indentErr *IndentError
	if errors.As(err, &indentErr) {
		return indentErr.Details
	}
	return nil
}

// IsMisuse reports whether err signals a broken frame nesting discipline
func IsMisuse(err error) bool {
	switch GetErrorCode(err) {
	case ErrFrameOrder, ErrFrameClosed, ErrFrameRoot, ErrFrameAliased:
		return true
	}
	return false
}
