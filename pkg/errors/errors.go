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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Deployment errors (one per entry or program)
	ErrMissingSource     ErrorCode = "MISSING_SOURCE"
	ErrConflictingDest   ErrorCode = "CONFLICTING_DESTINATION"
	ErrContentMismatch   ErrorCode = "CONTENT_MISMATCH"
	ErrManifestNotFound  ErrorCode = "MANIFEST_NOT_FOUND"
	ErrUnknownDirective  ErrorCode = "UNKNOWN_DIRECTIVE"
	ErrManifestMalformed ErrorCode = "MANIFEST_MALFORMED"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Repository errors
	ErrGitClone  ErrorCode = "GIT_CLONE"
	ErrGitUpdate ErrorCode = "GIT_UPDATE"
	ErrRepoRoot  ErrorCode = "REPO_ROOT"
)

// DotmanError represents a structured error with code and details
type DotmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotmanError) Is(target error) bool {
	var targetErr *DotmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotmanError with the given code and message
func New(code ErrorCode, message string) *DotmanError {
	return &DotmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotmanError {
	return &DotmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotmanError
func Wrap(err error, code ErrorCode, message string) *DotmanError {
	if err == nil {
		return nil
	}
	return &DotmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotmanError {
	if err == nil {
		return nil
	}
	return &DotmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotmanError) WithDetail(key string, value interface{}) *DotmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotmanErr *DotmanError
	if errors.As(err, &dotmanErr) {
		return dotmanErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotmanError
func GetErrorCode(err error) ErrorCode {
	var dotmanErr *DotmanError
	if errors.As(err, &dotmanErr) {
		return dotmanErr.Code
	}
	return ErrUnknown
}
