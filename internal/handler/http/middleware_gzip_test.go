// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "gzip with quality value", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzipped: true},
		{name: "client does not accept gzip"},
	}

	const page = `<!doctype html><title>Login | Auth App</title>`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(okHandler(http.StatusOK, page)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, page, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, page, rec.Body.String())
			}
		})
	}
}

func TestGZip_ImplicitStatusIsCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "2")
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"), "length of the plain body must not leak")
	assert.Equal(t, "ok", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_RedirectIsNotCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestGZip_RequestBody(t *testing.T) {
	const body = `{"idToken":"id-token"}`

	tests := []struct {
		name            string
		contentEncoding string
		payload         []byte
		wantStatus      int
	}{
		{name: "gzip body is decoded", contentEncoding: "gzip", payload: gzipBytes(t, []byte(body)), wantStatus: http.StatusOK},
		{name: "gzip among several encodings", contentEncoding: "gzip, deflate", payload: gzipBytes(t, []byte(body)), wantStatus: http.StatusOK},
		{name: "plain body untouched", payload: []byte(body), wantStatus: http.StatusOK},
		{name: "invalid gzip", contentEncoding: "gzip", payload: []byte("not gzipped"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				assert.Equal(t, body, string(got))
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/set-cookie", bytes.NewReader(tt.payload))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.True(t, strings.HasPrefix(rec.Body.String(), "Invalid gzip data"))
			}
		})
	}
}

func TestBodyAllowed(t *testing.T) {
	assert.True(t, bodyAllowed(http.StatusOK))
	assert.True(t, bodyAllowed(http.StatusUnprocessableEntity))
	assert.False(t, bodyAllowed(http.StatusNoContent))
	assert.False(t, bodyAllowed(http.StatusNotModified))
	assert.False(t, bodyAllowed(http.StatusTemporaryRedirect))
	assert.False(t, bodyAllowed(http.StatusContinue))
}
