package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("User not found")
)

// Service-level errors
var (
	// ErrUserAlreadyExists maps to 400 per the API contract (not 409).
	ErrUserAlreadyExists = errors.New("Username or email already exists")

	ErrInvalidPassword = errors.New("Invalid password")
)
