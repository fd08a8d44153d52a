package http

import (
	"net/http"

	"github.com/MKhiriev/auth-bridge/models"
)

// whoAmIErrorMessage picks the envelope message for a rejected who-am-i call.
func whoAmIErrorMessage(status int) string {
	if status == http.StatusUnauthorized {
		return MsgSessionExpired
	}
	return MsgUnableToVerify
}

// formStatus is the status a form page is re-rendered with after a failed
// attempt: 422 when the input was rejected locally, 401 otherwise.
func formStatus(result models.AuthResult) int {
	if !result.FieldErrors.Empty() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusUnauthorized
}

// backendStatus passes the backend status through, falling back to 500 when
// the backend answered with something that is not an error status.
func backendStatus(status int) int {
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
