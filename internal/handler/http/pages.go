package http

import (
	"net/http"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/ui"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/internal/validators"
	"github.com/MKhiriev/auth-bridge/models"
)

const (
	pathRoot      = "/"
	pathLogin     = "/login"
	pathSignup    = "/signup"
	pathDashboard = "/dashboard"
	pathLogout    = "/logout"

	redirectRegistered  = pathLogin + "?registered=1"
	redirectLogoutError = pathDashboard + "?logout_error=1"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	target := pathLogin
	if _, ok := utils.UserFromContext(r.Context()); ok {
		target = pathDashboard
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ui.PageLogin, newLoginPage("", models.FormErrors{}, r.URL.Query().Get("registered") == "1"))
}

// login handles the login form. A non-empty idToken field comes from the
// Google popup and skips the email/password flow.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := models.LoginForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	var result models.AuthResult
	if idToken := r.PostForm.Get("idToken"); idToken != "" {
		result = h.services.AuthService.LoginWithIDToken(ctx, idToken, cookieHeader(r))
	} else {
		result = h.services.AuthService.LoginWithEmail(ctx, form, cookieHeader(r))
	}

	if !result.Success {
		errs := result.FieldErrors
		errs.General = result.Error
		h.render(w, r, formStatus(result), ui.PageLogin, newLoginPage(form.Email, errs, false))
		return
	}

	utils.RelaySetCookies(w, result.SetCookies)
	http.Redirect(w, r, pathDashboard, http.StatusSeeOther)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ui.PageSignup, newSignupPage(models.SignupForm{}, models.FormErrors{}))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid signup form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := models.SignupForm{
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
		AcceptTerms:     checked(r.PostForm.Get("acceptTerms")),
	}

	result := h.services.AuthService.SignupWithEmail(ctx, form, cookieHeader(r))
	if !result.Success {
		errs := result.FieldErrors
		errs.General = result.Error
		h.render(w, r, formStatus(result), ui.PageSignup, newSignupPage(form, errs))
		return
	}

	http.Redirect(w, r, redirectRegistered, http.StatusSeeOther)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.UserFromContext(r.Context())

	var logoutError string
	if r.URL.Query().Get("logout_error") == "1" {
		logoutError = MsgLogoutFailed
	}

	h.render(w, r, http.StatusOK, ui.PageDashboard, ui.NewDashboardPage(user, logoutError))
}

// logout is the navbar form target. Failures send the user back to the
// dashboard, which then shows the logout error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).Component("auth.logout")

	resp, err := h.services.SessionService.Logout(ctx, cookieHeader(r))
	if err != nil {
		log.Err(err).Msg("unexpected error during logout")
		http.Redirect(w, r, redirectLogoutError, http.StatusSeeOther)
		return
	}
	if !resp.OK() {
		log.Error().Int("status", resp.StatusCode).Str("detail", resp.Detail).Msg("backend returned error")
		http.Redirect(w, r, redirectLogoutError, http.StatusSeeOther)
		return
	}

	log.Info().Msg("logout successful")
	utils.RelaySetCookies(w, resp.SetCookies)
	http.Redirect(w, r, pathLogin, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data ui.LayoutProvider) {
	if err := h.renderer.Render(w, status, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func newLoginPage(email string, errs models.FormErrors, registered bool) *ui.LoginPage {
	return &ui.LoginPage{
		Layout:     ui.Layout{PageTitle: "Login", CurrentPage: ui.PageLogin},
		Email:      email,
		Errors:     errs,
		Registered: registered,
	}
}

func newSignupPage(form models.SignupForm, errs models.FormErrors) *ui.SignupPage {
	strength := validators.PasswordStrength(form.Password, form.ConfirmPassword)

	page := &ui.SignupPage{
		Layout:      ui.Layout{PageTitle: "Sign Up", CurrentPage: ui.PageSignup},
		Email:       form.Email,
		AcceptTerms: form.AcceptTerms,
		Errors:      errs,
		Checklist:   validators.Checklist(strength),
	}
	if form.Password != "" {
		page.Strength = &strength
	}
	return page
}

// checked reports whether a checkbox value counts as ticked.
func checked(v string) bool {
	switch v {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
