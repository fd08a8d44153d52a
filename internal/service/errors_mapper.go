package service

import (
	"errors"

	"github.com/MKhiriev/auth-bridge/internal/adapter"
)

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrInvalidCredential):
		return MsgInvalidCredential
	case errors.Is(err, adapter.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, adapter.ErrWrongPassword):
		return MsgWrongPassword
	case errors.Is(err, adapter.ErrTooManyRequests):
		return MsgTooManyAttempts
	default:
		return MsgLoginFailed
	}
}

func signupErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, adapter.ErrWeakPassword):
		return MsgWeakPassword
	case errors.Is(err, adapter.ErrTooManyRequests):
		return MsgTooManyAttempts
	default:
		return MsgSignupFailed
	}
}
