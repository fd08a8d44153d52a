package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// identityErrorCodes maps identity provider error codes to sentinels. Codes
// are compared by prefix: the provider may append details, e.g.
// "WEAK_PASSWORD : Password should be at least 6 characters".
var identityErrorCodes = []struct {
	code string
	err  error
}{
	{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredential},
	{"INVALID_CREDENTIAL", ErrInvalidCredential},
	{"EMAIL_NOT_FOUND", ErrUserNotFound},
	{"INVALID_PASSWORD", ErrWrongPassword},
	{"TOO_MANY_ATTEMPTS_TRY_LATER", ErrTooManyRequests},
	{"EMAIL_EXISTS", ErrEmailExists},
	{"WEAK_PASSWORD", ErrWeakPassword},
}

type identityErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapIdentityError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body identityErrorBody
	_ = json.Unmarshal(resp.Body(), &body)
	message := strings.TrimSpace(body.Error.Message)

	for _, c := range identityErrorCodes {
		if strings.HasPrefix(message, c.code) {
			return fmt.Errorf("%w: %s", c.err, message)
		}
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrIdentityRejected, resp.StatusCode(), message)
}

// decodeBackendBody parses any JSON value the backend sent. Empty, null and
// malformed bodies yield an empty object.
func decodeBackendBody(raw []byte) any {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return map[string]any{}
	}
	return data
}

// detailOf extracts the "detail" field the backend attaches to errors.
// Structured details are re-encoded as JSON. Non-object bodies have none.
func detailOf(data any) string {
	obj, _ := data.(map[string]any)
	v, ok := obj["detail"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(encoded)
}
