package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
)

const (
	signInWithPasswordPath = "/accounts:signInWithPassword"
	signUpPath             = "/accounts:signUp"
)

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type httpIdentityAdapter struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewHTTPIdentityAdapter constructs the resty implementation of
// [IdentityAdapter] against the identity provider REST API at baseURL.
// An empty apiKey is accepted; every call then fails with
// [ErrIdentityNotConfigured].
func NewHTTPIdentityAdapter(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) (IdentityAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: identity: %w", ErrInvalidBaseURL, err)
	}

	return &httpIdentityAdapter{
		client: utils.NewHTTPClient(normalized, timeout),
		apiKey: strings.TrimSpace(apiKey),
		logger: log.Component("identity_adapter"),
	}, nil
}

// SignInWithPassword implements [IdentityAdapter].
func (h *httpIdentityAdapter) SignInWithPassword(ctx context.Context, email, password string) (string, error) {
	return h.exchange(ctx, signInWithPasswordPath, email, password)
}

// SignUp implements [IdentityAdapter].
func (h *httpIdentityAdapter) SignUp(ctx context.Context, email, password string) (string, error) {
	return h.exchange(ctx, signUpPath, email, password)
}

func (h *httpIdentityAdapter) exchange(ctx context.Context, path, email, password string) (string, error) {
	if h.apiKey == "" {
		return "", ErrIdentityNotConfigured
	}

	var result tokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("key", h.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}
	if err = mapIdentityError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("identity provider refused")
		return "", err
	}

	if result.IDToken == "" {
		return "", fmt.Errorf("%w: response carries no idToken", ErrIdentityRejected)
	}

	return result.IDToken, nil
}
