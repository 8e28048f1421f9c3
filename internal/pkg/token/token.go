// Package token issues and verifies the signed bearer tokens that carry a
// session's identity claims.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

const DefaultTTL = 24 * time.Hour

// Claims is the decoded payload of a session token.
type Claims struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. A non-positive ttl selects DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the given principal.
func (i *Issuer) Issue(p domain.Principal) (string, error) {
	acct := p.Identity()
	now := time.Now().UTC()
	claims := Claims{
		Email:       acct.Email,
		Role:        acct.Role,
		DisplayName: p.DisplayName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the decoded claims.
// Every failure (bad signature, wrong algorithm, tampered payload, expiry)
// collapses to domain.ErrInvalidToken so callers cannot tell them apart.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
