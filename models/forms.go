// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginForm holds the fields posted by the login page.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupForm holds the fields posted by the signup page.
type SignupForm struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// FormErrors maps form fields to the message shown under them. General is
// shown above the form and is used for failures not tied to a field.
type FormErrors struct {
	Email           string `json:"email,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	AcceptTerms     string `json:"acceptTerms,omitempty"`
	General         string `json:"general,omitempty"`
}

// Empty reports whether no field carries an error.
func (e FormErrors) Empty() bool {
	return e == FormErrors{}
}

// StrengthLabel grades a password by its estimated entropy.
type StrengthLabel string

const (
	StrengthWeak   StrengthLabel = "weak"
	StrengthFair   StrengthLabel = "fair"
	StrengthStrong StrengthLabel = "strong"
)

// Title is the label as shown to the user.
func (l StrengthLabel) Title() string {
	switch l {
	case StrengthStrong:
		return "Strong"
	case StrengthFair:
		return "Fair"
	default:
		return "Weak"
	}
}

// PasswordStrength backs the checklist on the signup page.
type PasswordStrength struct {
	HasMinLength bool
	HasUppercase bool
	HasLowercase bool
	HasNumber    bool

	// Match is true when the confirmation is non-empty and equal to the password.
	Match bool

	Entropy float64
	Label   StrengthLabel
}

// AuthResult is the outcome of a sign-in or sign-up attempt.
type AuthResult struct {
	Success bool
	Error   string

	// FieldErrors is set when the form did not pass validation and no
	// remote call was made.
	FieldErrors FormErrors

	// Data is the backend payload of a successful session exchange.
	Data any

	// SetCookies must be relayed to the browser unchanged.
	SetCookies []string
}
