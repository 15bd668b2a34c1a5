package services

import (
	"errors"
	"fmt"

	"ops-backend/repository"
)

// Error kinds. Every error a service returns wraps one of these (or is an internal failure).
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrAlreadyCheckedIn   = fmt.Errorf("already checked in today: %w", ErrConflict)
	ErrAlreadyCheckedOut  = fmt.Errorf("already checked out: %w", ErrConflict)
	ErrNotCheckedIn       = fmt.Errorf("no check-in record found: %w", ErrNotFound)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrAttendanceRecorded = fmt.Errorf("meeting attendance already recorded: %w", ErrConflict)
)

// storeErr translates repository errors into service error kinds.
func storeErr(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	default:
		return err
	}
}
