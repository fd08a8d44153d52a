// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/models"
)

// setCookie trades the ID token from the Google popup for a backend session
// and relays the backend's Set-Cookie headers to the browser.
func (h *Handler) setCookie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).Component("auth.set_cookie")

	// a literal null body decodes to a nil pointer and has no token field
	var body *models.SetCookieRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		if err == nil {
			err = errNullBody
		}
		log.Err(err).Msg("request body could not be decoded")
		utils.WriteJSON(w, models.Fail(MsgUnexpectedError), http.StatusInternalServerError)
		return
	}

	// only an absent or empty token is missing; anything else is the
	// backend's to judge
	if body.IDToken == "" {
		log.Warn().Err(ErrMissingIDToken).Send()
		utils.WriteJSON(w, models.Fail(MsgMissingIDToken), http.StatusBadRequest)
		return
	}

	log.Info().Msg("calling backend users/init")
	resp, err := h.services.SessionService.Exchange(ctx, body.IDToken, cookieHeader(r))
	if err != nil {
		log.Err(err).Msg("unexpected error during session exchange")
		utils.WriteJSON(w, models.Fail(MsgUnexpectedError), http.StatusInternalServerError)
		return
	}

	if !resp.OK() {
		log.Error().Int("status", resp.StatusCode).Str("detail", resp.Detail).Msg("backend returned error")
		utils.WriteJSON(w, models.Fail(MsgLoginFailed), backendStatus(resp.StatusCode))
		return
	}

	log.Info().Int("cookies", len(resp.SetCookies)).Msg("session cookie created")
	utils.RelaySetCookies(w, resp.SetCookies)
	utils.WriteJSON(w, models.Ok(resp.Data), http.StatusOK)
}

func (h *Handler) apiLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).Component("auth.logout")

	log.Info().Msg("calling backend logout")
	resp, err := h.services.SessionService.Logout(ctx, cookieHeader(r))
	if err != nil {
		log.Err(err).Msg("unexpected error during logout")
		utils.WriteJSON(w, models.Fail(MsgUnexpectedError), http.StatusInternalServerError)
		return
	}

	if !resp.OK() {
		log.Error().Int("status", resp.StatusCode).Str("detail", resp.Detail).Msg("backend returned error")
		utils.WriteJSON(w, models.Fail(MsgLogoutFailed), backendStatus(resp.StatusCode))
		return
	}

	log.Info().Msg("logout successful")
	utils.RelaySetCookies(w, resp.SetCookies)
	utils.WriteJSON(w, models.Ok(resp.Data), http.StatusOK)
}

func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).Component("auth.whoami")

	resp, err := h.services.SessionService.WhoAmI(ctx, cookieHeader(r))
	if err != nil {
		log.Err(err).Msg("unexpected error during session check")
		utils.WriteJSON(w, models.Fail(MsgUnexpectedError), http.StatusInternalServerError)
		return
	}

	switch {
	case resp.OK():
		log.Debug().Msg("user verified")
		utils.WriteJSON(w, models.Ok(resp.Data), http.StatusOK)
	case resp.StatusCode == http.StatusUnauthorized:
		log.Warn().Msg("invalid or expired session")
		utils.WriteJSON(w, models.Fail(whoAmIErrorMessage(resp.StatusCode)), http.StatusUnauthorized)
	default:
		log.Error().Int("status", resp.StatusCode).Str("detail", resp.Detail).Msg("backend returned error")
		utils.WriteJSON(w, models.Fail(whoAmIErrorMessage(resp.StatusCode)), backendStatus(resp.StatusCode))
	}
}

// cookieHeader returns the request's Cookie headers joined the way a single
// header would carry them.
func cookieHeader(r *http.Request) string {
	return strings.Join(r.Header.Values("Cookie"), "; ")
}
