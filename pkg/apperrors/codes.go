package apperrors

// ErrorCode identifies an error class independently of the HTTP status
// it maps to.
type ErrorCode string

const (
	// System and infrastructure errors.
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// Client input errors.
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeInvalidRange        ErrorCode = "INVALID_RANGE"
	CodeMalformedIdentifier ErrorCode = "MALFORMED_IDENTIFIER"

	// Valid negative outcomes.
	CodeNotFound ErrorCode = "NOT_FOUND"
)
