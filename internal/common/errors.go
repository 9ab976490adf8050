// Package common defines shared sentinel errors used across the SkinSync
// services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth gate errors.
	ErrDuplicateEmail    = errors.New("user already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrUserNotFound      = errors.New("user not found")
)
