package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(withGZip)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	// JSON routes forwarding the browser's cookies to the backend
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(true))
		r.Post("/api/auth/set-cookie", h.setCookie)
		r.Post("/api/auth/logout", h.apiLogout)
		r.Get("/api/auth/whoami", h.whoAmI)
	})

	// pages behind the route guard
	router.Group(func(r chi.Router) {
		r.Use(h.withRouteGuard)
		r.Get(pathRoot, h.root)
		r.Get(pathLogin, h.loginPage)
		r.Get(pathSignup, h.signupPage)
		r.With(withNoStore).Get(pathDashboard, h.dashboard)
		r.With(withNoStore).Get(pathDashboard+"/*", h.dashboard)
	})

	// form posts
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(false), withNoStore)
		r.Post(pathLogin, h.login)
		r.Post(pathSignup, h.signup)
		r.Post(pathLogout, h.logout)
	})

	router.Handle("/static/*", h.renderer.Static())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
