// Package users persists the global user collection.
package users

import (
	"context"

	"github.com/skinsync/skinsync/internal/models"
)

// Repository is the storage contract for user profiles.
//
// The collection is global (not scoped to a user) and keyed by profile id.
// Lookups by email are linear scans; the collection stays small by design.
type Repository interface {
	// List returns every stored profile. Missing or corrupt data yields an
	// empty slice, never an error.
	List(ctx context.Context) ([]models.UserProfile, error)

	// GetByID returns the profile with the given id, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)

	// GetByEmail returns the profile with the exact (case-sensitive) email,
	// or nil if absent.
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)

	// Save upserts the profile by id.
	Save(ctx context.Context, user *models.UserProfile) error
}
