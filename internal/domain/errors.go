// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")

	// Auth errors
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")

	// Tenant errors
	ErrNoTenant       = errors.New("no church membership")
	ErrForbidden      = errors.New("forbidden")
	ErrChurchNotFound = errors.New("church not found")
	ErrAlreadyMember  = errors.New("user already belongs to a church")

	// Identifier allocation errors
	ErrAllocationExhausted = errors.New("identifier allocation retries exhausted")

	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("already checked in to this event today")

	// Invitation errors
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation expired")
)
