package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// status codes at the boundary.
var (
	// ErrUserExists is returned when registering an email that already has an account.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the supplied password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
