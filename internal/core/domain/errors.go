package domain

import "errors"

var (
	// ErrMissingFields signals a create request without all required ids.
	ErrMissingFields = errors.New("all required fields must be provided")
	// ErrInvalidReference signals an order referencing a client, contractor,
	// object, or user that does not exist.
	ErrInvalidReference = errors.New("invalid reference in order")

	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrNotFound      = errors.New("document not found")
)
