package services

import "errors"

// Closed set of error kinds the service layer reports. Handlers map these to
// HTTP statuses and machine-readable codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSeatsAvailable   = errors.New("no seats available")
	ErrDuplicateRequest   = errors.New("a pending request for this ride already exists")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrRideNotActive      = errors.New("ride is not active")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
