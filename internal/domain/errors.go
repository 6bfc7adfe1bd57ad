package domain

import "errors"

var (
	// ErrEmptyField is returned when a required text field is empty
	ErrEmptyField = errors.New("required field is empty")

	// ErrNotFound is returned when the addressed row does not exist
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable wraps any failure of the underlying store
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrAlreadyConfigured is returned by first-time setup when a language pair exists
	ErrAlreadyConfigured = errors.New("language pair already configured")
)
