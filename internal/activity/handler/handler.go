package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activity/models"
	"mergington/internal/platform/metrics"
	"mergington/internal/platform/middleware"
	"mergington/internal/transport/http/shared"
	respond "mergington/internal/transport/http/shared/json"
	dErrors "mergington/pkg/domain-errors"
)

// Service defines the interface for activity registry operations.
type Service interface {
	List(ctx context.Context) (map[string]*models.Activity, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

// Handler handles activity registry endpoints.
type Handler struct {
	logger     *slog.Logger
	activities Service
	metrics    *metrics.Metrics
}

// New creates a new activity Handler.
func New(activities Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		activities: activities,
		metrics:    metrics,
	}
}

// Register registers the activity routes with the chi router. Activity names
// appear as path segments and may contain spaces; chi matches them against
// the percent-decoded path, so "Chess%20Club" resolves to the "Chess Club"
// registry key verbatim.
func (h *Handler) Register(r chi.Router) {
	r.Get("/activities", h.handleListActivities)
	r.Post("/activities/{activityName}/signup", h.handleSignup)
	r.Delete("/activities/{activityName}/signup/{email}", h.handleUnregister)
}

// handleListActivities returns the full name-to-record mapping unmodified.
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer h.observeLatency("list_activities", time.Now())

	activities, err := h.activities.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list activities",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, activities)
}

// handleSignup signs the email from the query string up for the activity in
// the path.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer h.observeLatency("signup", time.Now())

	activityName := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email query parameter is required"))
		return
	}

	message, err := h.activities.Signup(ctx, activityName, email)
	if err != nil {
		h.logger.WarnContext(ctx, "signup rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", activityName,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: message})
}

// handleUnregister removes the email in the path from the activity's roster.
func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer h.observeLatency("unregister", time.Now())

	activityName := chi.URLParam(r, "activityName")
	email := chi.URLParam(r, "email")

	message, err := h.activities.Unregister(ctx, activityName, email)
	if err != nil {
		h.logger.WarnContext(ctx, "unregister rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", activityName,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: message})
}

func (h *Handler) observeLatency(endpoint string, start time.Time) {
	if h.metrics != nil {
		h.metrics.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
	}
}
