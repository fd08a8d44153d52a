// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/auth-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// decodeEnvelope reads the JSON envelope written to rec.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// ─────────────────────────────────────────────
// POST /api/auth/set-cookie
// ─────────────────────────────────────────────

func TestSetCookie_Success(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.sessions.EXPECT().
		Exchange(gomock.Any(), "id-token", "theme=dark").
		Return(models.BackendResponse{
			StatusCode: http.StatusOK,
			Data:       map[string]any{"email": "jane@example.com"},
			SetCookies: []string{"session=abc; Path=/; HttpOnly", "csrf=xyz; Path=/"},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(`{"idToken":"id-token"}`))
	req.Header.Set("Cookie", "theme=dark")
	rec := httptest.NewRecorder()

	h.setCookie(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"session=abc; Path=/; HttpOnly", "csrf=xyz; Path=/"}, rec.Header().Values("Set-Cookie"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
	assert.Equal(t, map[string]any{"email": "jane@example.com"}, env.Data)
}

func TestSetCookie_EmptyBackendBodyStillHasData(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.sessions.EXPECT().
		Exchange(gomock.Any(), "id-token", "").
		Return(models.BackendResponse{StatusCode: http.StatusCreated, Data: map[string]any{}}, nil)

	rec := httptest.NewRecorder()
	h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(`{"idToken":"id-token"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{}}`, rec.Body.String())
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestSetCookie_MissingToken(t *testing.T) {
	bodies := []string{`{}`, `{"idToken":""}`, `{"idToken":null}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			h, _ := newTestHandler(t)
			rec := httptest.NewRecorder()

			h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Missing ID token"}`, rec.Body.String())
		})
	}
}

func TestSetCookie_InvalidBody(t *testing.T) {
	for _, body := range []string{`not json`, `null`, ``} {
		t.Run(body, func(t *testing.T) {
			h, _ := newTestHandler(t)
			rec := httptest.NewRecorder()

			h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(body)))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Unexpected error occurred"}`, rec.Body.String())
		})
	}
}

func TestSetCookie_WhitespaceTokenIsForwarded(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.sessions.EXPECT().
		Exchange(gomock.Any(), "   ", gomock.Any()).
		Return(models.BackendResponse{StatusCode: http.StatusUnauthorized, Detail: "Invalid token"}, nil)

	rec := httptest.NewRecorder()
	h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(`{"idToken":"   "}`)))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Login failed. Please try again."}`, rec.Body.String())
}

func TestSetCookie_BackendRejects(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantStatus: http.StatusForbidden},
		{name: "server error", status: http.StatusBadGateway, wantStatus: http.StatusBadGateway},
		{name: "redirect is not passed through", status: http.StatusFound, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.sessions.EXPECT().
				Exchange(gomock.Any(), "id-token", gomock.Any()).
				Return(models.BackendResponse{
					StatusCode: tt.status,
					Detail:     "Invalid token",
					SetCookies: []string{"session=; Max-Age=0"},
				}, nil)

			rec := httptest.NewRecorder()
			h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(`{"idToken":"id-token"}`)))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Login failed. Please try again."}`, rec.Body.String())
			assert.Empty(t, rec.Header().Values("Set-Cookie"), "cookies are relayed on success only")
		})
	}
}

func TestSetCookie_TransportError(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.sessions.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.BackendResponse{}, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	h.setCookie(rec, httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", strings.NewReader(`{"idToken":"id-token"}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, MsgUnexpectedError, env.Error)
}

// ─────────────────────────────────────────────
// POST /api/auth/logout
// ─────────────────────────────────────────────

func TestAPILogout(t *testing.T) {
	tests := []struct {
		name        string
		resp        models.BackendResponse
		err         error
		wantStatus  int
		wantBody    string
		wantCookies []string
	}{
		{
			name: "success relays cookie deletion",
			resp: models.BackendResponse{
				StatusCode: http.StatusOK,
				Data:       map[string]any{"message": "Logged out"},
				SetCookies: []string{"session=; Max-Age=0; Path=/"},
			},
			wantStatus:  http.StatusOK,
			wantBody:    `{"success":true,"data":{"message":"Logged out"}}`,
			wantCookies: []string{"session=; Max-Age=0; Path=/"},
		},
		{
			name:       "backend error status is passed through",
			resp:       models.BackendResponse{StatusCode: http.StatusServiceUnavailable, Detail: "down"},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"success":false,"error":"Logout failed. Please try again."}`,
		},
		{
			name:       "transport error",
			err:        errors.New("timeout"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Unexpected error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.sessions.EXPECT().Logout(gomock.Any(), "session=abc").Return(tt.resp, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			req.Header.Set("Cookie", "session=abc")
			rec := httptest.NewRecorder()

			h.apiLogout(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantCookies, rec.Header().Values("Set-Cookie"))
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/auth/whoami
// ─────────────────────────────────────────────

func TestWhoAmI(t *testing.T) {
	tests := []struct {
		name       string
		resp       models.BackendResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "verified",
			resp: models.BackendResponse{
				StatusCode: http.StatusOK,
				Data:       map[string]any{"success": true, "email": "jane@example.com"},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"data":{"success":true,"email":"jane@example.com"}}`,
		},
		{
			name:       "expired session",
			resp:       models.BackendResponse{StatusCode: http.StatusUnauthorized},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"Session expired. Please log in again."}`,
		},
		{
			name:       "other backend error",
			resp:       models.BackendResponse{StatusCode: http.StatusInternalServerError, Detail: "db down"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Unable to verify session"}`,
		},
		{
			name:       "forbidden",
			resp:       models.BackendResponse{StatusCode: http.StatusForbidden},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"success":false,"error":"Unable to verify session"}`,
		},
		{
			name:       "transport error",
			err:        errors.New("dial tcp: refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Unexpected error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.sessions.EXPECT().WhoAmI(gomock.Any(), "session=abc; theme=dark").Return(tt.resp, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/whoami", nil)
			req.Header.Add("Cookie", "session=abc")
			req.Header.Add("Cookie", "theme=dark")
			rec := httptest.NewRecorder()

			h.whoAmI(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestBackendStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, backendStatus(http.StatusUnauthorized))
	assert.Equal(t, http.StatusBadGateway, backendStatus(http.StatusBadGateway))
	assert.Equal(t, http.StatusInternalServerError, backendStatus(http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, backendStatus(http.StatusMovedPermanently))
	assert.Equal(t, http.StatusInternalServerError, backendStatus(0))
}

func TestFormStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, formStatus(models.AuthResult{FieldErrors: models.FormErrors{Email: "x"}}))
	assert.Equal(t, http.StatusUnauthorized, formStatus(models.AuthResult{Error: "Invalid email or password"}))
}
