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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrRunAsRoot    ErrorCode = "RUN_AS_ROOT"

	// Installer settings errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Record errors
	ErrCorruptRecord ErrorCode = "CORRUPT_RECORD"
	ErrRecordRead    ErrorCode = "RECORD_READ"
	ErrRecordWrite   ErrorCode = "RECORD_WRITE"
	ErrRecordIsDir   ErrorCode = "RECORD_IS_DIR"

	// Environment errors
	ErrMissingDependency ErrorCode = "MISSING_DEPENDENCY"
	ErrIneligible        ErrorCode = "INELIGIBLE"
	ErrStoreUnavailable  ErrorCode = "STORE_UNAVAILABLE"
	ErrAutoDetect        ErrorCode = "AUTO_DETECT"
	ErrNetwork           ErrorCode = "NETWORK"

	// Execution errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrBuildFailed   ErrorCode = "BUILD_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// QualiaError represents a structured error with code and details
type QualiaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *QualiaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QualiaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *QualiaError) Is(target error) bool {
	var targetErr *QualiaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new QualiaError with the given code and message
func New(code ErrorCode, message string) *QualiaError {
	return &QualiaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new QualiaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *QualiaError {
	return &QualiaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a QualiaError
func Wrap(err error, code ErrorCode, message string) *QualiaError {
	if err == nil {
		return nil
	}
	return &QualiaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *QualiaError {
	if err == nil {
		return nil
	}
	return &QualiaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *QualiaError) WithDetail(key string, value interface{}) *QualiaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var qErr *QualiaError
		if !errors.As(err, &qErr) {
			return false
		}
		if qErr.Code == code {
			return true
		}
		err = qErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a QualiaError
func GetErrorCode(err error) ErrorCode {
	var qErr *QualiaError
	if errors.As(err, &qErr) {
		return qErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a QualiaError
func GetErrorDetails(err error) map[string]interface{} {
	var qErr *QualiaError
	if errors.As(err, &qErr) {
		return qErr.Details
	}
	return nil
}

// GetErrorMessage returns the message of a QualiaError without its code or
// wrapped cause, or err.Error() for other errors
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var qErr *QualiaError
	if errors.As(err, &qErr) {
		return qErr.Message
	}
	return err.Error()
}
