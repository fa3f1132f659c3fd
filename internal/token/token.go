// Package token generates the opaque bearer credentials used for sessions
// and password resets. Validity is entirely store-lookup-based, so the value
// carries no structure beyond randomness.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

const tokenBytes = 32

func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
