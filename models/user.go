// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// User is the current-user view shown by the pages. It is rebuilt from the
// backend's who-am-i answer on every request and is never persisted.
type User struct {
	// Email is the only field the backend always returns.
	Email string `json:"email"`

	// Name is the display name, empty when the identity provider has none.
	Name string `json:"name,omitempty"`

	// Picture is an avatar URL, empty when unknown.
	Picture string `json:"picture,omitempty"`

	// FirebaseUID is the backend's identifier of the account.
	FirebaseUID string `json:"firebase_uid,omitempty"`
}

// DisplayName returns the local part of the email address, which is what the
// dashboard greets the user with.
func (u User) DisplayName() string {
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// WhoAmIResponse is the body of a successful GET /api/auth/who-am-i call.
type WhoAmIResponse struct {
	Success     bool   `json:"success"`
	FirebaseUID string `json:"firebase_uid"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Picture     string `json:"picture"`
}
