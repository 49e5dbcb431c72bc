package apperrors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, CodeStoreUnavailable, "store", "Document store unavailable", http.StatusServiceUnavailable)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Same(t, cause, err.Unwrap())
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	inner := ErrStoreUnavailable(fmt.Errorf("timeout"))
	wrapped := fmt.Errorf("searching properties: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeStoreUnavailable, appErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	err := Wrap(fmt.Errorf("dial tcp: refused"), CodeStoreUnavailable, "store", "Document store unavailable", http.StatusServiceUnavailable)

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, string(CodeStoreUnavailable), payload["code"])
	assert.NotContains(t, payload, "HTTPCode")
	assert.NotContains(t, string(data), "dial tcp", "the cause never leaks into the response body")
}

func TestDomainErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidPriceRange.HTTPCode)
	assert.Equal(t, CodeInvalidRange, ErrInvalidPriceRange.Code)

	assert.Equal(t, http.StatusBadRequest, ErrMalformedIdentifier.HTTPCode)
	assert.Equal(t, CodeMalformedIdentifier, ErrMalformedIdentifier.Code)

	notFound := ErrNotFound(nil)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPCode)
	assert.Equal(t, CodeNotFound, notFound.Code)

	invalidPrice := ErrInvalidPrice("minPrice")
	assert.Equal(t, CodeValidationFailed, invalidPrice.Code)
	assert.Contains(t, invalidPrice.Message, "minPrice")
}
