package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the listings search domain.

// ErrNotFound converts a repository "no such document" result into an
// AppError. Used at the handler boundary; inside the core, absence is a
// nil result, not an error.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "property", "Property not found", http.StatusNotFound)
}

// ErrStoreUnavailable wraps a document-store failure. Store errors are
// never retried or swallowed; they surface as 503.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap(err, CodeStoreUnavailable, "store", "Document store unavailable", http.StatusServiceUnavailable)
}

// ErrInvalidPriceRange rejects a search where both bounds are present and
// minPrice > maxPrice. This is the one filter condition that fails the
// request instead of being silently corrected.
var ErrInvalidPriceRange = New(
	CodeInvalidRange,
	"validation",
	"minPrice cannot be greater than maxPrice",
	http.StatusBadRequest,
)

// ErrMalformedIdentifier rejects a lookup whose id is blank or not a
// 24-character hex string.
var ErrMalformedIdentifier = New(
	CodeMalformedIdentifier,
	"validation",
	"Invalid id format. Expect a 24-hex string.",
	http.StatusBadRequest,
)

// ErrInvalidPrice rejects a price bound that does not parse as a decimal.
func ErrInvalidPrice(field string) *AppError {
	return New(CodeValidationFailed, "validation", field+" must be a decimal number", http.StatusBadRequest)
}
