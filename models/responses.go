package models

// Envelope is the JSON shape returned by every /api/auth/* route.
// Exactly one of Data and Error is set.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope carrying a user-facing message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// SetCookieRequest is the body of POST /api/auth/set-cookie.
type SetCookieRequest struct {
	IDToken string `json:"idToken"`
}
