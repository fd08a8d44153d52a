package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Messages shown to the user. They never carry internal error text.
const (
	MsgInvalidCredential  = "Invalid email or password"
	MsgUserNotFound       = "User not found"
	MsgWrongPassword      = "Incorrect password"
	MsgTooManyAttempts    = "Too many attempts. Try again later"
	MsgLoginFailed        = "Login failed"
	MsgEmailExists        = "An account with this email already exists"
	MsgWeakPassword       = "Password is too weak"
	MsgSignupFailed       = "Signup failed"
	MsgGoogleFailed       = "Google sign-in failed"
	MsgExchangeRejected   = "Login failed. Please try again."
	MsgBackendUnreachable = "Unable to reach backend"
)
