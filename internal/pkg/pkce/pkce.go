// Package pkce implements the Proof Key for Code Exchange pieces of
// the gateway OAuth flow (RFC 7636, S256 method).
package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"agendapay/internal/pkg/errs"
)

// verifierBytes yields an 86-character base64url verifier, well above
// the 43-character RFC minimum.
const verifierBytes = 64

// NewVerifier generates a cryptographically random code verifier.
func NewVerifier() (string, error) {
	buf := make([]byte, verifierBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate code verifier")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Challenge derives the S256 code challenge for a verifier.
func Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

const ChallengeMethod = "S256"
