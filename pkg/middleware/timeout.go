package middleware

import (
	"net/http"
	"time"
)

// Timeout bounds the whole inbound exchange, including the upstream round
// trip. An unresponsive upstream must not tie up a request forever.
func Timeout(timeout time.Duration) Middleware {
	return func(h http.Handler) http.Handler {
		return http.TimeoutHandler(h, timeout, "Request timed out")
	}
}
