// Package httpserver wraps http.Server construction so timeouts stay
// consistent and main only deals with lifecycle.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an http.Server with sane timeouts for a small JSON API.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
