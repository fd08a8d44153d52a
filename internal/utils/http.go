package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets "Content-Type: application/json". If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Ok(data), http.StatusOK)
//	WriteJSON(w, models.Fail("Missing ID token"), http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// RelaySetCookies appends every value to the response's Set-Cookie header
// unchanged.
func RelaySetCookies(w http.ResponseWriter, values []string) {
	for _, v := range values {
		w.Header().Add("Set-Cookie", v)
	}
}
