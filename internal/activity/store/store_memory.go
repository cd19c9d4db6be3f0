package store

import (
	"context"
	"slices"
	"sync"

	"mergington/internal/activity/models"
	"mergington/internal/sentinel"
)

// InMemoryStore holds the activity registry in process memory. The registry
// lives for the process lifetime and is never persisted.
//
// All mutations take the write lock, so concurrent signups against the same
// activity cannot lose updates or slip past the duplicate check.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewInMemory constructs a store seeded with the given activities.
func NewInMemory(seed map[string]*models.Activity) *InMemoryStore {
	activities := make(map[string]*models.Activity, len(seed))
	for name, activity := range seed {
		activities[name] = activity.Clone()
	}
	return &InMemoryStore{activities: activities}
}

// List returns a copy of the full registry keyed by activity name.
func (s *InMemoryStore) List(_ context.Context) (map[string]*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*models.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns a copy of a single activity record.
func (s *InMemoryStore) Get(_ context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return activity.Clone(), nil
}

// AddParticipant appends email to the end of the activity's roster and
// returns the updated record. Capacity is not checked.
func (s *InMemoryStore) AddParticipant(_ context.Context, name, email string) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if activity.HasParticipant(email) {
		return nil, sentinel.ErrAlreadyRegistered
	}
	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), nil
}

// RemoveParticipant removes the exact matching roster entry and returns the
// updated record.
func (s *InMemoryStore) RemoveParticipant(_ context.Context, name, email string) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return nil, sentinel.ErrNotRegistered
	}
	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	return activity.Clone(), nil
}
