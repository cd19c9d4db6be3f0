// Package service implements the activity registry operations: list the
// registry, sign a participant up, remove a participant.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mergington/internal/activity/models"
	"mergington/internal/platform/metrics"
	"mergington/internal/sentinel"
	dErrors "mergington/pkg/domain-errors"
)

// Store defines the persistence interface for the activity registry.
// Error Contract:
// - Get/AddParticipant/RemoveParticipant return sentinel.ErrNotFound for an unknown activity
// - AddParticipant returns sentinel.ErrAlreadyRegistered for a duplicate email
// - RemoveParticipant returns sentinel.ErrNotRegistered for an absent email
type Store interface {
	List(ctx context.Context) (map[string]*models.Activity, error)
	Get(ctx context.Context, name string) (*models.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*models.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*models.Activity, error)
}

// Option configures the Service.
type Option func(*Service)

// Service owns registry business rules: membership checks and the exact
// confirmation and failure messages of the API. Capacity is recorded on the
// records but deliberately never enforced.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// New constructs a Service around the given store.
func New(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer("mergington/activity")
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer injects a custom tracer, useful for tests or a pre-configured
// provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// List returns the full registry mapping. It never fails and applies no
// filtering or pagination.
func (s *Service) List(ctx context.Context) (map[string]*models.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "activity.list")
	defer span.End()

	activities, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list activities")
	}
	if s.metrics != nil {
		s.metrics.ActivitiesListed.Inc()
	}
	return activities, nil
}

// Signup appends email to the named activity's roster and returns the
// confirmation message. The email is taken verbatim; duplicate detection is
// an exact, case-sensitive string match.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "activity.signup",
		trace.WithAttributes(attribute.String("activity.name", activityName)))
	defer span.End()

	updated, err := s.store.AddParticipant(ctx, activityName, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", s.translateSignupError(ctx, err, activityName)
	}

	if s.metrics != nil {
		s.metrics.SignupsTotal.WithLabelValues(activityName).Inc()
		s.metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(updated.Participants)))
	}
	s.logger.InfoContext(ctx, "participant signed up",
		"activity", activityName,
		"roster_size", len(updated.Participants),
	)

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes the exact matching roster entry and returns the
// confirmation message.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "activity.unregister",
		trace.WithAttributes(attribute.String("activity.name", activityName)))
	defer span.End()

	updated, err := s.store.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", s.translateUnregisterError(ctx, err, activityName)
	}

	if s.metrics != nil {
		s.metrics.UnregistersTotal.WithLabelValues(activityName).Inc()
		s.metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(updated.Participants)))
	}
	s.logger.InfoContext(ctx, "participant unregistered",
		"activity", activityName,
		"roster_size", len(updated.Participants),
	)

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// translateSignupError converts store sentinels into domain errors exactly once.
func (s *Service) translateSignupError(ctx context.Context, err error, activityName string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		s.rejectSignup("activity_not_found")
		return dErrors.New(dErrors.CodeNotFound, "Activity not found")
	case errors.Is(err, sentinel.ErrAlreadyRegistered):
		s.rejectSignup("already_signed_up")
		return dErrors.New(dErrors.CodeAlreadyRegistered, "Student is already signed up")
	default:
		s.logger.ErrorContext(ctx, "signup failed",
			"activity", activityName,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "signup failed")
	}
}

// translateUnregisterError converts store sentinels into domain errors exactly once.
func (s *Service) translateUnregisterError(ctx context.Context, err error, activityName string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		s.rejectSignup("activity_not_found")
		return dErrors.New(dErrors.CodeNotFound, "Activity not found")
	case errors.Is(err, sentinel.ErrNotRegistered):
		s.rejectSignup("not_registered")
		return dErrors.New(dErrors.CodeNotRegistered, "Student is not registered for this activity")
	default:
		s.logger.ErrorContext(ctx, "unregister failed",
			"activity", activityName,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "unregister failed")
	}
}

func (s *Service) rejectSignup(reason string) {
	if s.metrics != nil {
		s.metrics.SignupsRejected.WithLabelValues(reason).Inc()
	}
}
