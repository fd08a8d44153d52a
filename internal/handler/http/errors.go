// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMissingIDToken is returned when POST /api/auth/set-cookie carries no
// usable idToken.
var ErrMissingIDToken = errors.New("missing ID token")

var errNullBody = errors.New("request body is null")

// Messages returned to the browser in the JSON envelope or shown on pages.
const (
	MsgMissingIDToken  = "Missing ID token"
	MsgLoginFailed     = "Login failed. Please try again."
	MsgLogoutFailed    = "Logout failed. Please try again."
	MsgSessionExpired  = "Session expired. Please log in again."
	MsgUnableToVerify  = "Unable to verify session"
	MsgUnexpectedError = "Unexpected error occurred"
	MsgTooManyRequests = "Too many requests. Please try again later."
)
