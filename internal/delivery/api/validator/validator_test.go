package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,notblank"`
	Title   string   `json:"title,omitempty" validate:"required"`
}

func TestCustomValidator_UsesJSONNames(t *testing.T) {
	err := New().Validate(&sampleRequest{UserIDs: []string{"u1", "  "}})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 2)
	assert.Equal(t, "sampleRequest.userIds[1]", validationErrs[0].Namespace())
	assert.Equal(t, "notblank", validationErrs[0].Tag())
	assert.Equal(t, "title", validationErrs[1].Field())
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sampleRequest{UserIDs: []string{"u1"}, Title: "t"}))
}
