package service

import (
	"errors"

	"github.com/talentbinder/dashboard/internal/backend"
)

var (
	ErrAuthenticationRequired = backend.ErrAuthenticationRequired
	ErrForbidden              = backend.ErrForbidden

	// ErrMutationInFlight rejects a second concurrent join-table edit on the
	// same entity+relation; the controls are locked while one is running.
	ErrMutationInFlight = errors.New("Eine Änderung wird bereits verarbeitet. Bitte warten Sie einen Moment.")
)

// ValidationError is raised client-side, before any network call: missing
// required input, duplicate relationship adds and the like. Handlers render
// it inline next to the control that caused it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
