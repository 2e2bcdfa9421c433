// Package tokens resolves configured token algorithm names against the
// signing methods the JWT library actually supports. Token issuance and
// verification live with the (separately designed) auth service; the edge
// only needs to prove at startup that ALGORITHM names a real method.
package tokens

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SigningMethod returns the JWT signing method registered under alg.
func SigningMethod(alg string) (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", alg)
	}
	return method, nil
}
