// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between the HTTP handlers and the
// outbound adapters.
//
// SessionService bridges browser cookies to the auth backend. AuthService
// drives the email/password and Google sign-in flows and maps provider and
// backend failures to the messages shown to the user.
package service

import (
	"context"

	"github.com/MKhiriev/auth-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService forwards session operations to the auth backend. cookie is
// the raw Cookie header of the browser request.
type SessionService interface {
	// Exchange trades an ID token for a backend session.
	Exchange(ctx context.Context, idToken, cookie string) (models.BackendResponse, error)

	WhoAmI(ctx context.Context, cookie string) (models.BackendResponse, error)

	Logout(ctx context.Context, cookie string) (models.BackendResponse, error)

	// Identify reports whether the backend accepts the session and, when it
	// does, the user it belongs to. The user may be nil if the backend
	// accepted the session without naming an email. Transport failures count
	// as unauthenticated.
	Identify(ctx context.Context, cookie string) (*models.User, bool)
}

// AuthService runs the sign-in and sign-up flows of the login pages.
// Failures are reported inside [models.AuthResult], never as Go errors.
type AuthService interface {
	LoginWithEmail(ctx context.Context, form models.LoginForm, cookie string) models.AuthResult
	SignupWithEmail(ctx context.Context, form models.SignupForm, cookie string) models.AuthResult
	LoginWithIDToken(ctx context.Context, idToken, cookie string) models.AuthResult
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppName(ctx context.Context) string
}
