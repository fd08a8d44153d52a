// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/models"
	"github.com/go-resty/resty/v2"
)

const (
	initUserPath = "/api/auth/users/init"
	whoAmIPath   = "/api/auth/who-am-i"
	logoutPath   = "/api/auth/logout"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the resty implementation of
// [BackendAdapter]. baseURL is normalised (a missing scheme defaults to
// http, trailing slashes are dropped) and timeout bounds every call.
//
// Returns [ErrInvalidBaseURL] (wrapped) if baseURL is empty or unparsable.
func NewHTTPBackendAdapter(baseURL string, timeout time.Duration, log *logger.Logger) (BackendAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: backend: %w", ErrInvalidBaseURL, err)
	}

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: log.Component("backend_adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// InitUser implements [BackendAdapter].
func (b *httpBackendAdapter) InitUser(ctx context.Context, idToken, cookie string) (models.BackendResponse, error) {
	resp, err := b.request(ctx, cookie).
		SetHeader("Authorization", "Bearer "+idToken).
		SetHeader("Content-Type", "application/json").
		Post(initUserPath)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("%w: init user request: %w", ErrBackendUnavailable, err)
	}

	return b.toBackendResponse(resp), nil
}

// WhoAmI implements [BackendAdapter].
func (b *httpBackendAdapter) WhoAmI(ctx context.Context, cookie string) (models.BackendResponse, error) {
	resp, err := b.request(ctx, cookie).Get(whoAmIPath)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("%w: who-am-i request: %w", ErrBackendUnavailable, err)
	}

	return b.toBackendResponse(resp), nil
}

// Logout implements [BackendAdapter].
func (b *httpBackendAdapter) Logout(ctx context.Context, cookie string) (models.BackendResponse, error) {
	resp, err := b.request(ctx, cookie).Post(logoutPath)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("%w: logout request: %w", ErrBackendUnavailable, err)
	}

	return b.toBackendResponse(resp), nil
}

func (b *httpBackendAdapter) request(ctx context.Context, cookie string) *resty.Request {
	req := b.client.R().SetContext(ctx)
	if cookie != "" {
		req.SetHeader("Cookie", cookie)
	}
	return req
}

func (b *httpBackendAdapter) toBackendResponse(resp *resty.Response) models.BackendResponse {
	data := decodeBackendBody(resp.Body())

	out := models.BackendResponse{
		StatusCode: resp.StatusCode(),
		Data:       data,
		Detail:     detailOf(data),
		SetCookies: resp.Header().Values("Set-Cookie"),
	}

	b.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", out.StatusCode).
		Int("set_cookies", len(out.SetCookies)).
		Dur("duration", resp.Time()).
		Msg("backend call")

	return out
}
