package store

import (
	"context"

	"mergington/internal/activity/models"
)

// Store is the persistence boundary for the activity registry.
//
// Error Contract:
// - Get, AddParticipant, RemoveParticipant return sentinel.ErrNotFound when the activity does not exist
// - AddParticipant returns sentinel.ErrAlreadyRegistered when the email is already on the roster
// - RemoveParticipant returns sentinel.ErrNotRegistered when the email is not on the roster
// - Returned records are defensive copies; mutating them does not affect the store
type Store interface {
	List(ctx context.Context) (map[string]*models.Activity, error)
	Get(ctx context.Context, name string) (*models.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*models.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*models.Activity, error)
}
