// Package auth validates institutional SSO tokens. Tokens are HS256 JWTs
// carrying the account id as subject and the username as a claim.
package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// Validator checks SSO-issued JWTs against the shared signing secret.
type Validator struct {
	secret []byte
	issuer string
}

// NewValidator creates a Validator for the given secret and expected issuer.
func NewValidator(secret, issuer string) *Validator {
	return &Validator{secret: []byte(secret), issuer: issuer}
}

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// ValidateToken parses and verifies the token and returns the caller it
// identifies. Any verification failure wraps domain.ErrUnauthorized.
func (v *Validator) ValidateToken(_ context.Context, token string) (domain.Caller, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("%w: %s", domain.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id < 1 {
		return domain.Caller{}, fmt.Errorf("%w: malformed subject", domain.ErrUnauthorized)
	}
	if c.Username == "" {
		return domain.Caller{}, fmt.Errorf("%w: missing username claim", domain.ErrUnauthorized)
	}

	return domain.Caller{ID: id, Username: c.Username}, nil
}
