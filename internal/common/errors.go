// Package common defines shared constants and sentinel errors used across
// MediCart components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account registry errors.
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Checkout errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("empty cart")
)
