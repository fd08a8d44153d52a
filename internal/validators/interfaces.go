// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the login and signup forms before any remote call
// is made and grades password strength for the signup checklist.
//
// Core concepts:
//   - Validator: checks a form value, optionally only the named fields.
//   - FormError: the error returned for a rejected form. It carries one
//     message per offending field, ready to be rendered under the input.
//
// Email syntax is checked with go-playground/validator; password entropy is
// estimated with wagslane/go-password-validator.
package validators

import "context"

// Validator checks a submitted form. When field names are given only those
// fields are checked. A rejected form yields a *FormError.
type Validator interface {
	Validate(ctx context.Context, form any, fields ...string) error
}
