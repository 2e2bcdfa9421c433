package tokens_test

import (
	"testing"

	"fartgen-backend/pkg/tokens"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningMethod(t *testing.T) {
	tests := []struct {
		alg     string
		want    jwt.SigningMethod
		wantErr bool
	}{
		{alg: "HS256", want: jwt.SigningMethodHS256},
		{alg: "HS512", want: jwt.SigningMethodHS512},
		{alg: "RS256", want: jwt.SigningMethodRS256},
		{alg: "none", want: jwt.SigningMethodNone},
		{alg: "HS-256", wantErr: true},
		{alg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			method, err := tokens.SigningMethod(tt.alg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, method)
		})
	}
}
