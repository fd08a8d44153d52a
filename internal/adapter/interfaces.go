// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of auth-bridge.
//
// [BackendAdapter] forwards browser cookies to the auth backend that owns
// sessions. [IdentityAdapter] exchanges email/password credentials for an ID
// token at the identity provider's REST API. Both are built on resty.
//
// A non-2xx answer from the backend is data, not an error: it is returned in
// [models.BackendResponse] for the caller to map. Identity provider error codes
// are translated into the sentinel values defined in errors.go so callers can
// use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/auth-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BackendAdapter is the client side of the three auth backend endpoints.
// cookie is the raw Cookie header of the browser request; it is forwarded
// only when non-empty.
type BackendAdapter interface {
	// InitUser exchanges an ID token for a session cookie:
	// POST /api/auth/users/init with "Authorization: Bearer <idToken>".
	InitUser(ctx context.Context, idToken, cookie string) (models.BackendResponse, error)

	// WhoAmI asks the backend who owns the session: GET /api/auth/who-am-i.
	WhoAmI(ctx context.Context, cookie string) (models.BackendResponse, error)

	// Logout invalidates the session: POST /api/auth/logout.
	Logout(ctx context.Context, cookie string) (models.BackendResponse, error)
}

// IdentityAdapter signs users in and up against the identity provider.
type IdentityAdapter interface {
	// SignInWithPassword returns an ID token for valid credentials.
	SignInWithPassword(ctx context.Context, email, password string) (string, error)

	// SignUp creates an account and returns its first ID token.
	SignUp(ctx context.Context, email, password string) (string, error)
}
