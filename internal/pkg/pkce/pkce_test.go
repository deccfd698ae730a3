//go:build unit

package pkce_test

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"agendapay/internal/pkg/pkce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifier(t *testing.T) {
	v1, err := pkce.NewVerifier()
	require.NoError(t, err)
	v2, err := pkce.NewVerifier()
	require.NoError(t, err)

	assert.NotEqual(t, v1, v2)
	assert.GreaterOrEqual(t, len(v1), 43, "RFC 7636 minimum verifier length")

	// URL-safe alphabet only, no padding
	assert.False(t, strings.ContainsAny(v1, "+/="))
	_, err = base64.RawURLEncoding.DecodeString(v1)
	assert.NoError(t, err)
}

func TestChallenge(t *testing.T) {
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"

	sum := sha256.Sum256([]byte(verifier))
	want := base64.RawURLEncoding.EncodeToString(sum[:])

	got := pkce.Challenge(verifier)
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "="))
}
