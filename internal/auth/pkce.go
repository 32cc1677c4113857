package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// randomToken returns n random bytes encoded as unpadded base64url. Used for
// the OAuth state; PKCE verifiers come from oauth2.GenerateVerifier.
func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
