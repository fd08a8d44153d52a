// Package http implements the HTTP surface of the bridge.
//
// It serves the login, signup and dashboard pages, the JSON routes under
// /api/auth that forward the browser's cookies to the auth backend, and the
// middleware around them: route guarding, rate limiting, request tracing,
// access logging, security headers and response compression.
package http
