// Package auth verifies Supabase-issued JWTs and extracts the caller identity.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, wrong audience, or malformed.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID string
	Email  string
}

// TokenVerifier validates a bearer token and returns the caller identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// supabaseClaims extends the registered claims with the email field Supabase
// puts in its access tokens.
type supabaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTVerifier verifies HS256 tokens signed with the Supabase project's JWT
// secret. Tokens must carry the "authenticated" audience.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for the given shared secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token, returning the caller identity.
func (v *JWTVerifier) Verify(token string) (Identity, error) {
	claims := &supabaseClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if !claims.VerifyAudience("authenticated", true) {
		return Identity{}, fmt.Errorf("%w: unexpected audience", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
