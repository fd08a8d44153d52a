// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session-key
// hashing, JSON response writing, HTTP client initialization, ID-token claim
// inspection and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/auth-bridge/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the route guard stores the current user.
var UserCtxKey = contextKey("currentUser")

// WithUser returns a copy of ctx carrying user. A nil user is stored as-is,
// which marks the request as checked and unauthenticated.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext retrieves the current user stored by WithUser.
//
// Returns the user and an ok flag:
//   - ok == true: a non-nil user was stored
//   - ok == false: nothing was stored or the request is unauthenticated
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
