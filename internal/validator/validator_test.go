package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,is-user-role"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&sampleInput{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email", "errors must be keyed by json name, not struct field")
}

func TestValidate_UserRoleRule(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.Validate(&sampleInput{Email: "a@b.io", Role: "trainer"}))
	assert.NoError(t, v.Validate(&sampleInput{Email: "a@b.io", Role: "client"}))
	assert.NoError(t, v.Validate(&sampleInput{Email: "a@b.io"}), "empty role passes, required is a separate rule")

	err := v.Validate(&sampleInput{Email: "a@b.io", Role: "superuser"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["role"], "valid user role")
}

func TestValidate_Passes(t *testing.T) {
	t.Parallel()

	v := New()
	assert.NoError(t, v.Validate(&sampleInput{Email: "trainer@gym.io"}))
}
