// Package photos persists each user's progress-photo timeline.
package photos

import (
	"context"

	"github.com/skinsync/skinsync/internal/models"
)

// Repository is the storage contract for a user's photo timeline. Photos are
// insert-only (no update in place); the stored collection is re-sorted to
// descending timestamp order after every Add, and Delete preserves order.
type Repository interface {
	// List returns the user's photos, newest first. Missing or corrupt data
	// yields an empty slice, never an error.
	List(ctx context.Context, userID string) ([]models.SkinPhoto, error)

	// Add inserts the photo and restores descending timestamp order.
	Add(ctx context.Context, userID string, photo *models.SkinPhoto) error

	// Delete removes the photo by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, userID string, photoID string) error
}
