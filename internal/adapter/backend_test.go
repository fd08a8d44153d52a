// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBackend creates a backend adapter pointed at the test server.
func newTestBackend(t *testing.T, serverURL string) BackendAdapter {
	t.Helper()
	a, err := NewHTTPBackendAdapter(serverURL, 2*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "no scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "path kept", raw: "https://id.example.com/v1/", want: "https://id.example.com/v1"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPBackendAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter("", time.Second, logger.Nop())
	require.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── InitUser ─────────────────────────────────────────────────────────────────

func TestInitUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/users/init", r.URL.Path)
		assert.Equal(t, "Bearer id-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "theme=dark", r.Header.Get("Cookie"))

		w.Header().Add("Set-Cookie", "session=s1; Path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "csrf=c1; Path=/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"email":"a@b.io"}`))
	}))
	defer srv.Close()

	resp, err := newTestBackend(t, srv.URL).InitUser(context.Background(), "id-token", "theme=dark")

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@b.io", resp.Object()["email"])
	assert.Equal(t, []string{"session=s1; Path=/; HttpOnly", "csrf=c1; Path=/"}, resp.SetCookies)
}

func TestInitUser_RejectedIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token"}`))
	}))
	defer srv.Close()

	resp, err := newTestBackend(t, srv.URL).InitUser(context.Background(), "bad", "")

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", resp.Detail)
	assert.Empty(t, resp.SetCookies)
}

// ── WhoAmI ───────────────────────────────────────────────────────────────────

func TestWhoAmI_NoCookieNotForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/who-am-i", r.URL.Path)
		_, present := r.Header["Cookie"]
		assert.False(t, present)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	resp, err := newTestBackend(t, srv.URL).WhoAmI(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestBackend_SessionCookiesAreNotShared(t *testing.T) {
	var whoAmICookies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/users/init":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "user-a", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/api/auth/who-am-i":
			whoAmICookies = append(whoAmICookies, r.Header.Get("Cookie"))
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	backend := newTestBackend(t, srv.URL)
	ctx := context.Background()

	resp, err := backend.InitUser(ctx, "token-a", "")
	require.NoError(t, err)
	require.Len(t, resp.SetCookies, 1)

	_, err = backend.WhoAmI(ctx, "")
	require.NoError(t, err)
	_, err = backend.WhoAmI(ctx, "session=user-b")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "session=user-b"}, whoAmICookies)
}

func TestWhoAmI_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	resp, err := newTestBackend(t, srv.URL).WhoAmI(context.Background(), "session=x")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, resp.Data)
	assert.Empty(t, resp.Detail)
}

func TestWhoAmI_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestBackend(t, url).WhoAmI(context.Background(), "session=x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestWhoAmI_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBackend(t, srv.URL).WhoAmI(ctx, "session=x")
	require.ErrorIs(t, err, ErrBackendUnavailable)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_RelaysCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))

		w.Header().Set("Set-Cookie", "session=; Max-Age=0; Path=/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	resp, err := newTestBackend(t, srv.URL).Logout(context.Background(), "session=abc")

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, []string{"session=; Max-Age=0; Path=/"}, resp.SetCookies)
}

// ── body helpers ─────────────────────────────────────────────────────────────

func TestDetailOf(t *testing.T) {
	assert.Equal(t, "", detailOf(map[string]any{}))
	assert.Equal(t, "", detailOf([]any{"detail"}))
	assert.Equal(t, "nope", detailOf(map[string]any{"detail": "nope"}))
	assert.JSONEq(t, `[{"msg":"field required"}]`,
		detailOf(map[string]any{"detail": []any{map[string]any{"msg": "field required"}}}))
}

func TestDecodeBackendBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "empty", raw: "", want: map[string]any{}},
		{name: "null", raw: "null", want: map[string]any{}},
		{name: "malformed", raw: "{", want: map[string]any{}},
		{name: "object", raw: `{"a":"b"}`, want: map[string]any{"a": "b"}},
		{name: "array", raw: "[1,2]", want: []any{1.0, 2.0}},
		{name: "string", raw: `"done"`, want: "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeBackendBody([]byte(tt.raw)))
		})
	}
}
