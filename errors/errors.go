package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the structured error type used across lazycollect.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, errors.New(ErrCodeEmptySequence, "")) matches by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidArgument creates an error for an operation argument that cannot be used.
func InvalidArgument(operation, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s: %s", operation, reason),
		Details: map[string]any{"operation": operation},
	}
}

// NotNumeric creates an error for an item a numeric operation cannot coerce.
func NotNumeric(operation string, index int, item any) *AppError {
	return &AppError{
		Code:    ErrCodeNotNumeric,
		Message: fmt.Sprintf("%s: item %d (%T) is not numeric", operation, index, item),
		Details: map[string]any{"operation": operation, "index": index},
	}
}

// EmptySequence creates an error for an operation that needs at least one item.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptySequence,
		Message: fmt.Sprintf("%s: sequence is empty", operation),
		Details: map[string]any{"operation": operation},
	}
}

// ContractViolation creates an error for a descriptor queued after a
// terminal-shaped result.
func ContractViolation(operation, after string) *AppError {
	return &AppError{
		Code:    ErrCodeContractViolation,
		Message: fmt.Sprintf("%s queued after terminal operation %s", operation, after),
		Details: map[string]any{"operation": operation, "after": after},
	}
}

// UnknownOperation creates an error for a descriptor with an unknown tag.
func UnknownOperation(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownOperation,
		Message: fmt.Sprintf("unknown operation %q", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InvalidConfig creates an error for configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
