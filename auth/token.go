package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 24 * time.Hour

const adminRole = "admin"

var ErrInvalidToken = fmt.Errorf("invalid or expired token")

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies admin tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte

	// now is swappable in tests to pin the expiry boundary.
	now func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue returns a signed token carrying the admin role claim.
func (t *TokenIssuer) Issue() (string, error) {
	now := t.now()
	claims := adminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a bearer token and returns the role it carries. Every
// failure mode collapses into ErrInvalidToken; callers must not leak
// which check failed.
func (t *TokenIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &adminClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*adminClaims)
	if !ok || claims.Role != adminRole {
		return "", ErrInvalidToken
	}
	return claims.Role, nil
}
