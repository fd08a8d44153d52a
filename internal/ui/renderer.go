// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ui renders the server-side pages of auth-bridge and serves their
// static assets. Templates and assets are embedded into the binary.
//
// Each page template defines a "content" block that is executed inside the
// shared "layout". Reusable pieces (card, button, input, navbar, strength
// checklist) live in components.html and receive their arguments through the
// dict template function.
package ui

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var assets embed.FS

var ErrUnknownPage = errors.New("unknown page")

// Settings are the values every page shares.
type Settings struct {
	SiteTitle string
	AppName   string
	Version   string
	Identity  IdentityConfig
}

// Renderer executes page templates with the shared layout applied.
type Renderer struct {
	pages    map[string]*template.Template
	settings Settings
	static   http.Handler
}

// NewRenderer parses every page template once. It fails if any template is
// malformed.
func NewRenderer(settings Settings) (*Renderer, error) {
	r := &Renderer{
		pages:    make(map[string]*template.Template),
		settings: settings,
	}

	for _, page := range []string{PageLogin, PageSignup, PageDashboard} {
		tmpl, err := template.New(page).Funcs(funcMap).ParseFS(assets,
			"templates/layout.html",
			"templates/components.html",
			"templates/pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.static = http.StripPrefix("/static/", http.FileServerFS(staticFS))

	return r, nil
}

// Render writes page with status. The output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data LayoutProvider) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	r.fillLayout(data.LayoutData())

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets under /static/.
func (r *Renderer) Static() http.Handler {
	return r.static
}

func (r *Renderer) fillLayout(l *Layout) {
	l.SiteTitle = r.settings.SiteTitle
	l.AppName = r.settings.AppName
	l.Version = r.settings.Version
	l.Identity = r.settings.Identity

	if l.PageTitle != "" {
		l.Title = l.PageTitle + " | " + r.settings.AppName
	} else {
		l.Title = r.settings.SiteTitle
	}
}

var funcMap = template.FuncMap{
	"dict":        dict,
	"cardClass":   cardClass,
	"buttonClass": buttonClass,
}

// dict builds a map from alternating keys and values so components can take
// named arguments: {{template "button" dict "Label" "Login" "Variant" "primary"}}.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Component helpers take any because dict leaves absent keys nil.

func cardClass(variant any) string {
	if v, _ := variant.(string); v == "elevated" {
		return "card card--elevated"
	}
	return "card card--default"
}

func buttonClass(variant, fullWidth any) string {
	v, _ := variant.(string)
	switch v {
	case "secondary", "danger":
	default:
		v = "primary"
	}

	class := "btn btn--" + v
	if full, _ := fullWidth.(bool); full {
		class += " btn--full"
	}
	return class
}
