package models

// BackendResponse is what the auth backend answered to a forwarded call.
// A non-2xx status is a normal response here, not an error.
type BackendResponse struct {
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int

	// Data is the decoded JSON body, relayed to the browser as-is. It is an
	// empty object when the body was empty, null or not valid JSON.
	Data any

	// Detail is the backend's "detail" field, present on its error replies.
	Detail string

	// SetCookies holds every Set-Cookie header value in the order received.
	SetCookies []string
}

// Object returns Data when the body was a JSON object and an empty map
// otherwise.
func (r BackendResponse) Object() map[string]any {
	if m, ok := r.Data.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// OK reports whether the backend answered with a 2xx status.
func (r BackendResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
