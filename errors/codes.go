package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates an operation received an unusable argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeNotNumeric indicates a numeric operation met a non-numeric item.
	ErrCodeNotNumeric ErrorCode = "NOT_NUMERIC"
)

// Sequence errors
const (
	// ErrCodeEmptySequence indicates the operation needs at least one item.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
)

// Pipeline errors
const (
	// ErrCodeContractViolation indicates a descriptor was queued after a
	// terminal-shaped result.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeUnknownOperation indicates a descriptor carries an unknown operation tag.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
