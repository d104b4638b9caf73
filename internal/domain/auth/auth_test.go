package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/gaas-console/internal/domain/auth"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParseToken_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.RegisteredClaims{Subject: "javainuse", ExpiresAt: jwt.NewNumericDate(exp)})

	tok, err := auth.ParseToken("  " + raw + "\n")
	require.NoError(t, err)
	assert.Equal(t, raw, tok.Raw)
	assert.Equal(t, "javainuse", tok.Subject)
	assert.True(t, exp.Equal(tok.ExpiresAt))
	assert.False(t, tok.Expired(time.Now()))
	assert.True(t, tok.Expired(exp.Add(time.Second)))
}

func TestParseToken_NoExpiry(t *testing.T) {
	tok, err := auth.ParseToken(signed(t, jwt.RegisteredClaims{Subject: "u"}))
	require.NoError(t, err)
	assert.True(t, tok.ExpiresAt.IsZero())
	assert.False(t, tok.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := auth.ParseToken("")
	require.Error(t, err)

	_, err = auth.ParseToken("not-a-jwt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse token")
}
