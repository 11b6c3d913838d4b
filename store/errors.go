package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateKey is returned when an insert collides with a unique constraint
	// (national identity, email or serial number).
	ErrDuplicateKey = errors.New("duplicate national ID, email, or serial number")
	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
