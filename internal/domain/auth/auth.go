package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials are exchanged for a Token at the API's auth endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is a bearer token issued by the GaaS API. The signature is verified
// server-side only; the client reads the claims to report expiry.
type Token struct {
	Raw       string    `json:"token"`
	Subject   string    `json:"subject,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func ParseToken(raw string) (Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Token{}, fmt.Errorf("parse token: empty token")
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Token{}, fmt.Errorf("parse token: %w", err)
	}

	tok := Token{Raw: raw, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		tok.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return tok, nil
}

// Expired reports whether the token carries an expiry at or before now.
// Tokens without an exp claim never expire client-side.
func (t Token) Expired(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(t.ExpiresAt)
}
