// Package httptransport wires the public HTTP surface: the activity registry
// API, the embedded signup page, health probes, and metrics exposition.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activityhandler "mergington/internal/activity/handler"
	"mergington/internal/platform/health"
	"mergington/internal/platform/middleware"
	"mergington/web"
)

// NewRouter wires all public endpoints with middleware.
func NewRouter(activities *activityhandler.Handler, healthHandler *health.Handler, logger *slog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))

	// The front-end page is the canonical entry point; the root issues the
	// same temporary redirect the original site did.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	activities.Register(r)
	healthHandler.Register(r)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
