// Package token exchanges a client-supplied identity for a signed
// access token and validates presented tokens.
package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenService struct {
	Users     store.Users
	JWTSecret []byte
}

// Issue persists the identity (full replacement keyed by email) and
// returns a token carrying the identity as claims. Tokens carry no
// expiry; they stay valid until the secret rotates.
func (t *TokenService) Issue(ctx context.Context, u models.User) (string, error) {
	if u.Email == "" {
		return "", errors.New("identity missing email")
	}

	if err := t.Users.Upsert(ctx, u); err != nil {
		return "", fmt.Errorf("persist identity: %w", err)
	}

	claims := jwt.MapClaims{
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and returns the embedded claims. The
// claims must carry an email.
func (t *TokenService) Verify(raw string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.JWTSecret, nil
	}); err != nil {
		return nil, ErrInvalidToken
	}

	if email, _ := claims["email"].(string); email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
