// Package products persists each user's routine products.
package products

import (
	"context"

	"github.com/skinsync/skinsync/internal/models"
)

// Repository is the storage contract for a user's product collection.
// Every method is scoped by the owning user's id.
type Repository interface {
	// List returns the user's products. Missing or corrupt data yields an
	// empty slice, never an error.
	List(ctx context.Context, userID string) ([]models.Product, error)

	// Save upserts the product by id.
	Save(ctx context.Context, userID string, product *models.Product) error

	// Delete removes the product by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, userID string, productID string) error
}
