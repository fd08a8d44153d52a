// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/auth-bridge/internal/adapter"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/models"
)

type sessionService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

// NewSessionService returns the SessionService that talks to the backend
// directly, without caching.
func NewSessionService(backend adapter.BackendAdapter, logger *logger.Logger) SessionService {
	return &sessionService{
		backend: backend,
		logger:  logger.Component("session_service"),
	}
}

func (s *sessionService) Exchange(ctx context.Context, idToken, cookie string) (models.BackendResponse, error) {
	resp, err := s.backend.InitUser(ctx, idToken, cookie)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("exchange id token: %w", err)
	}
	return resp, nil
}

func (s *sessionService) WhoAmI(ctx context.Context, cookie string) (models.BackendResponse, error) {
	resp, err := s.backend.WhoAmI(ctx, cookie)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("who-am-i: %w", err)
	}
	return resp, nil
}

func (s *sessionService) Logout(ctx context.Context, cookie string) (models.BackendResponse, error) {
	resp, err := s.backend.Logout(ctx, cookie)
	if err != nil {
		return models.BackendResponse{}, fmt.Errorf("logout: %w", err)
	}
	return resp, nil
}

func (s *sessionService) Identify(ctx context.Context, cookie string) (*models.User, bool) {
	resp, err := s.backend.WhoAmI(ctx, cookie)
	if err != nil {
		logger.FromContext(ctx).Component("middleware").Error().
			Err(err).
			Msg("backend session verification failed")
		return nil, false
	}
	if !resp.OK() {
		return nil, false
	}

	return CurrentUserFrom(resp.Object()), true
}

// CurrentUserFrom derives the current user from a who-am-i payload. The user
// is read from data["user"] when it is an object and from data itself
// otherwise. It returns nil when no email is present.
func CurrentUserFrom(data map[string]any) *models.User {
	if data == nil {
		return nil
	}

	src := data
	if nested, ok := data["user"].(map[string]any); ok {
		src = nested
	}

	email := stringField(src, "email")
	if email == "" {
		return nil
	}

	return &models.User{
		Email:       email,
		Name:        stringField(src, "name"),
		Picture:     stringField(src, "picture"),
		FirebaseUID: stringField(src, "firebase_uid"),
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
