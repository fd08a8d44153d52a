package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SessionKey derives a fixed-size map key from a session cookie value so raw
// cookies are never held in memory longer than a request.
func SessionKey(cookieValue string) string {
	sum := sha256.Sum256([]byte(cookieValue))
	return hex.EncodeToString(sum[:])
}
