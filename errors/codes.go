package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lookup errors
const (
	// ErrCodeNotFound indicates no element satisfied a lookup.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMultipleMatches indicates more than one element satisfied a
	// lookup that required at most one.
	ErrCodeMultipleMatches ErrorCode = "MULTIPLE_MATCHES"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field or document has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var codeMessages = map[ErrorCode]string{
	ErrCodeNotFound:        "Not Found",
	ErrCodeMultipleMatches: "Multiple elements found",
	ErrCodeInvalidInput:    "Invalid input",
	ErrCodeMissingField:    "Missing field",
	ErrCodeInvalidFormat:   "Invalid format",
	ErrCodeInternal:        "Internal error",
}

// Text returns a short human-readable label for the code.
func (c ErrorCode) Text() string {
	if m, ok := codeMessages[c]; ok {
		return m
	}
	return string(c)
}
