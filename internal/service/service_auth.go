// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/adapter"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/internal/validators"
	"github.com/MKhiriev/auth-bridge/models"
)

type authService struct {
	identity  adapter.IdentityAdapter
	sessions  SessionService
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewAuthService(identity adapter.IdentityAdapter, sessions SessionService, logger *logger.Logger) AuthService {
	return &authService{
		identity:  identity,
		sessions:  sessions,
		validator: validators.NewAuthFormValidator(),
		now:       time.Now,
		logger:    logger.Component("auth_service"),
	}
}

func (s *authService) LoginWithEmail(ctx context.Context, form models.LoginForm, cookie string) models.AuthResult {
	form.Email = strings.TrimSpace(form.Email)
	if result, rejected := s.validate(ctx, form); rejected {
		return result
	}

	idToken, err := s.identity.SignInWithPassword(ctx, form.Email, form.Password)
	if err != nil {
		s.log(ctx).Warn().Err(err).Str("flow", "email_login").Msg("identity provider sign-in failed")
		return models.AuthResult{Error: loginErrorMessage(err)}
	}

	return s.exchange(ctx, idToken, cookie, MsgExchangeRejected)
}

func (s *authService) SignupWithEmail(ctx context.Context, form models.SignupForm, cookie string) models.AuthResult {
	form.Email = strings.TrimSpace(form.Email)
	if result, rejected := s.validate(ctx, form); rejected {
		return result
	}

	if _, err := s.identity.SignUp(ctx, form.Email, form.Password); err != nil {
		s.log(ctx).Warn().Err(err).Str("flow", "email_signup").Msg("identity provider sign-up failed")
		return models.AuthResult{Error: signupErrorMessage(err)}
	}

	s.log(ctx).Info().Str("flow", "email_signup").Msg("account created")
	return models.AuthResult{Success: true}
}

func (s *authService) LoginWithIDToken(ctx context.Context, idToken, cookie string) models.AuthResult {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return models.AuthResult{Error: MsgGoogleFailed}
	}

	return s.exchange(ctx, idToken, cookie, MsgGoogleFailed)
}

// validate reports rejected == true together with the field errors when form
// does not pass validation.
func (s *authService) validate(ctx context.Context, form any) (models.AuthResult, bool) {
	err := s.validator.Validate(ctx, form)
	if err == nil {
		return models.AuthResult{}, false
	}

	if fields, ok := validators.FieldErrors(err); ok {
		return models.AuthResult{FieldErrors: fields}, true
	}

	s.log(ctx).Error().Err(err).Msg("form validation failed unexpectedly")
	return models.AuthResult{Error: MsgLoginFailed}, true
}

// exchange trades idToken for a backend session. rejectedMsg is reported
// when the backend answers with a non-2xx status.
func (s *authService) exchange(ctx context.Context, idToken, cookie, rejectedMsg string) models.AuthResult {
	log := s.log(ctx)

	if claims, err := utils.ClaimsFromIDToken(idToken); err == nil {
		log = &logger.Logger{Logger: log.With().Str("uid", claims.UID).Logger()}
		if claims.Expired(s.now()) {
			log.Warn().Time("expires_at", claims.ExpiresAt).Msg("ID token already expired, backend will reject it")
		}
	}

	resp, err := s.sessions.Exchange(ctx, idToken, cookie)
	if err != nil {
		log.Error().Err(err).Msg("session exchange failed")
		return models.AuthResult{Error: MsgBackendUnreachable}
	}

	if !resp.OK() {
		log.Warn().Int("status", resp.StatusCode).Str("detail", resp.Detail).Msg("backend rejected session exchange")
		return models.AuthResult{Error: rejectedMsg}
	}

	return models.AuthResult{
		Success:    true,
		Data:       resp.Data,
		SetCookies: resp.SetCookies,
	}
}

func (s *authService) log(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx).Component("auth_service")
}
