package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedIDToken is returned when an ID token cannot be split into claims.
var ErrMalformedIDToken = errors.New("malformed ID token")

// IDTokenClaims is the subset of an identity provider ID token that is useful
// in logs.
type IDTokenClaims struct {
	// UID is the "user_id" claim, or "sub" when user_id is absent.
	UID       string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim lies before now.
// Tokens without exp are never reported as expired.
func (c IDTokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// ClaimsFromIDToken reads claims from tokenString WITHOUT verifying its
// signature. The result must only be used for diagnostics: the auth backend
// is the one that verifies tokens.
//
// Example usage:
//
//	claims, err := utils.ClaimsFromIDToken(idToken)
//	if err == nil {
//	    log.Debug().Str("uid", claims.UID).Send()
//	}
func ClaimsFromIDToken(tokenString string) (IDTokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return IDTokenClaims{}, fmt.Errorf("%w: %w", ErrMalformedIDToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return IDTokenClaims{}, ErrMalformedIDToken
	}

	var result IDTokenClaims

	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		result.UID = uid
	} else if sub, err := claims.GetSubject(); err == nil {
		result.UID = sub
	}

	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
