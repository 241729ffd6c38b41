package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token fields the site reads for display and expiry.
// The API signs and verifies its tokens; the site never checks signatures.
type Claims struct {
	Subject   string
	Name      string
	Email     string
	ExpiresAt time.Time
}

var parser = jwt.NewParser()

// Inspect decodes a token without verifying its signature. Opaque tokens
// return an error and should be treated as valid but anonymous.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, mc); err != nil {
		return nil, err
	}

	claims := &Claims{}
	claims.Subject, _ = mc.GetSubject()
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	claims.Name, _ = mc["name"].(string)
	claims.Email, _ = mc["email"].(string)
	return claims, nil
}

// Expired reports whether the token's exp claim is at or before now.
// Tokens without exp never expire here.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// DisplayName prefers name, then email, then subject.
func (c *Claims) DisplayName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Email != "":
		return c.Email
	default:
		return c.Subject
	}
}
