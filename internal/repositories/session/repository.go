// Package session persists the single process-wide session pointer: the id
// of the currently authenticated user, or nothing.
package session

import "context"

// Repository is the storage contract for the session pointer.
type Repository interface {
	// Get returns the active user id, or "" when no session exists.
	Get(ctx context.Context) (string, error)

	// Set records userID as the active session.
	Set(ctx context.Context, userID string) error

	// Clear removes the session pointer. Always succeeds on absent state.
	Clear(ctx context.Context) error
}
