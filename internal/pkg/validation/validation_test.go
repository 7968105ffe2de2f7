package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrors(t *testing.T) {
	validate := validator.New()

	type loginPayload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6,max=255"`
	}

	t.Run("per-field messages", func(t *testing.T) {
		err := validate.Struct(loginPayload{Email: "not-an-email", Password: "abc"})
		require.Error(t, err)

		fields := FormatErrors(err)
		require.Len(t, fields, 2)
		assert.Equal(t, "email", fields[0].Field)
		assert.Equal(t, "enter a valid email", fields[0].Message)
		assert.Equal(t, "password", fields[1].Field)
		assert.Equal(t, "password must be at least 6 characters", fields[1].Message)
	})

	t.Run("required", func(t *testing.T) {
		err := validate.Struct(loginPayload{})
		require.Error(t, err)

		fields := FormatErrors(err)
		require.Len(t, fields, 2)
		assert.Equal(t, "email is required", fields[0].Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		fields := FormatErrors(errors.New("unexpected EOF"))
		require.Len(t, fields, 1)
		assert.Equal(t, "unexpected EOF", fields[0].Message)
	})
}
