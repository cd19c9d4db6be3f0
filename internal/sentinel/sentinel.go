package sentinel

import "errors"

// Sentinel dependency errors. Stores return these (optionally wrapped) so the
// service layer can translate them into domain errors exactly once.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
)
