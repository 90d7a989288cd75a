// Package auth holds the request-admission middleware pair: token
// verification followed by role resolution.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/service/token"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

// Context keys set by the middleware chain.
const (
	CtxClaims = "claims"
	CtxEmail  = "email"
	CtxRole   = "role"
)

type Middleware struct {
	Tokens *token.TokenService
	Users  store.Users
}

// VerifyToken admits requests carrying a valid bearer token and
// attaches the decoded claims and email to the echo context.
func (m *Middleware) VerifyToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		claims, err := m.Tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		email, _ := claims["email"].(string)
		c.Set(CtxClaims, claims)
		c.Set(CtxEmail, email)
		return next(c)
	}
}

// ResolveRole looks up the authenticated user and attaches its resolved
// role tier. Runs after VerifyToken. An unknown email is treated the
// same as a bad token.
func (m *Middleware) ResolveRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, _ := c.Get(CtxEmail).(string)

		u, err := m.Users.FindByEmail(c.Request().Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		c.Set(CtxRole, models.RoleFromString(u.Role))
		return next(c)
	}
}

// AdminOnly rejects any request whose resolved role is not admin. Runs
// after ResolveRole.
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if RoleFrom(c) != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		return next(c)
	}
}

// EmailFrom returns the authenticated email set by VerifyToken.
func EmailFrom(c echo.Context) string {
	email, _ := c.Get(CtxEmail).(string)
	return email
}

// RoleFrom returns the role set by ResolveRole, defaulting to buyer.
func RoleFrom(c echo.Context) models.Role {
	if r, ok := c.Get(CtxRole).(models.Role); ok {
		return r
	}
	return models.RoleBuyer
}

// ClaimsFrom returns the decoded claims set by VerifyToken.
func ClaimsFrom(c echo.Context) jwt.MapClaims {
	claims, _ := c.Get(CtxClaims).(jwt.MapClaims)
	return claims
}
