package middleware

import (
	"net/http"
	"strings"
)

// CaseInsensitive converts URL paths to lowercase so endpoints work
// regardless of case. Useful for QR routing slips where uppercase
// letters encode more efficiently.
func CaseInsensitive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = strings.ToLower(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
