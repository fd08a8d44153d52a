// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/models"
)

// Routes the guard treats specially. Everything under a protected prefix
// needs a session; auth-only routes are for signed-out visitors.
var (
	protectedPrefixes = []string{pathDashboard}
	authOnlyRoutes    = []string{pathLogin, pathSignup}
)

// withRouteGuard asks the backend who the caller is, stores the answer in
// the request context and redirects according to guardRedirect.
func (h *Handler) withRouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r).Component("middleware")

		user, authenticated := h.services.SessionService.Identify(ctx, cookieHeader(r))
		if authenticated && user == nil {
			user = &models.User{}
		}
		if !authenticated {
			user = nil
		}

		if target, redirect := guardRedirect(r.URL.Path, authenticated); redirect {
			log.Debug().
				Str("path", r.URL.Path).
				Bool("authenticated", authenticated).
				Str("redirect", target).
				Msg("route guard redirect")
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// guardRedirect decides where a request for path goes given the session
// state. redirect is false when the request should pass through.
func guardRedirect(path string, authenticated bool) (target string, redirect bool) {
	if path == pathRoot {
		if authenticated {
			return pathDashboard, true
		}
		return pathLogin, true
	}

	if !authenticated && isProtected(path) {
		return pathLogin, true
	}

	if authenticated && isAuthOnly(path) {
		return pathDashboard, true
	}

	return "", false
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAuthOnly(path string) bool {
	return slices.Contains(authOnlyRoutes, path)
}
