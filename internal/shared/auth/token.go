package auth

import (
	"net/http"
	"strings"
)

// ExtractToken pulls a token from the Authorization header (Bearer scheme)
// and falls back to the "token" query parameter, matching how the websocket
// endpoint accepts credentials.
func ExtractToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	if r.URL == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}
