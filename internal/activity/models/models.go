// Package models defines the activity registry's records and API payloads.
package models

import "slices"

// Activity is a named extracurricular offering. The name itself is the
// registry key and is not repeated inside the record. MaxParticipants is
// recorded for display; no operation enforces it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy so callers can hand records across boundaries
// without aliasing the store's roster slice.
func (a *Activity) Clone() *Activity {
	clone := *a
	clone.Participants = slices.Clone(a.Participants)
	return &clone
}

// HasParticipant reports whether email is on the roster. The match is
// exact and case-sensitive.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// MessageResponse is the success envelope for roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// Seed returns the fixed startup registry. Activities are never created or
// deleted at runtime; only their rosters change.
func Seed() map[string]*Activity {
	return map[string]*Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
