package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchForm struct {
	Name    string `form:"name" validate:"max=10"`
	Address string `form:"address" validate:"max=20"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&searchForm{Name: "centro", SortDir: "asc"}))
	assert.NoError(t, v.Validate(&searchForm{}), "empty optional fields pass")
}

func TestValidate_ReportsFormTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&searchForm{Name: strings.Repeat("a", 11)})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Contains(t, vErr.Errors, "name", "field names must match the query parameter, not the Go field")
	assert.Equal(t, "Must be at most 10 characters long", vErr.Errors["name"])
}

func TestValidate_FallsBackToJSONTag(t *testing.T) {
	v := New()

	err := v.Validate(&searchForm{SortDir: "sideways"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Contains(t, vErr.Errors, "sortDir")
	assert.Equal(t, "Must be one of: asc, desc", vErr.Errors["sortDir"])
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	v := New()

	err := v.Validate(&searchForm{
		Name:    strings.Repeat("a", 11),
		Address: strings.Repeat("b", 21),
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, vErr.Errors, 2)
}
