package errors_test

import (
	"fmt"
	"strconv"
	"testing"

	"fartgen-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.ConfigError
		want string
	}{
		{
			name: "missing key",
			err:  errors.MissingKey("DATABASE_URL"),
			want: "CONFIG_MISSING_KEY: DATABASE_URL: required value is missing",
		},
		{
			name: "invalid value",
			err:  errors.Invalid("CORS_ORIGINS", "origin must be a URL"),
			want: "CONFIG_INVALID: CORS_ORIGINS: origin must be a URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCoercionWrapsCause(t *testing.T) {
	_, cause := strconv.Atoi("not-a-number")
	require.Error(t, cause)

	err := errors.Coercion("PORT", "not-a-number", "int", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `cannot parse "not-a-number" as int`)
}

func TestIsConfigError(t *testing.T) {
	err := fmt.Errorf("loading settings: %w", errors.MissingKey("SECRET_KEY"))
	assert.True(t, errors.IsConfigError(err))
	assert.False(t, errors.IsConfigError(fmt.Errorf("plain error")))
}
