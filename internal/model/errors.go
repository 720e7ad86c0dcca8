package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Authentication errors
	ErrUserNotFound  = errors.New("user does not exist")
	ErrWrongPassword = errors.New("incorrect password")
	ErrNoSession     = errors.New("no active session")

	// Registration errors
	ErrUsernameTaken = errors.New("username already exists")
)
