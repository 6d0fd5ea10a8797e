package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required,min=1"`
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Limit  int    `json:"limit" validate:"min=1"`
}

func TestStructValid(t *testing.T) {
	err := Struct(&sample{Name: "ok", Limit: 20})
	assert.NoError(t, err)
}

func TestDetailUsesJSONFieldNames(t *testing.T) {
	err := Struct(&sample{UserID: "nope", Limit: 0})
	require.Error(t, err)

	detail := Detail(err)
	assert.Equal(t, []string{"is required"}, detail["name"])
	assert.Equal(t, []string{"must be a valid UUID"}, detail["user_id"])
	assert.Equal(t, []string{"must be at least 1"}, detail["limit"])
}

func TestDetailNonValidationError(t *testing.T) {
	detail := Detail(assert.AnError)
	require.Contains(t, detail, "body")
}
