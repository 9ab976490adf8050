package products

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/storage"
)

const keyPrefix = "routines:"

// KVRepository implements Repository over the durable key-value store, one
// whole-collection value per user.
type KVRepository struct {
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (r *KVRepository) List(ctx context.Context, userID string) ([]models.Product, error) {
	data, err := r.kv.Get(ctx, key(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	if data == nil {
		return []models.Product{}, nil
	}

	var all []models.Product
	if err := json.Unmarshal(data, &all); err != nil {
		return []models.Product{}, nil
	}
	return all, nil
}

func (r *KVRepository) Save(ctx context.Context, userID string, product *models.Product) error {
	all, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if all[i].ID == product.ID {
			all[i] = *product
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *product)
	}

	return r.write(ctx, userID, all)
}

func (r *KVRepository) Delete(ctx context.Context, userID string, productID string) error {
	all, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, p := range all {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}

	return r.write(ctx, userID, kept)
}

func (r *KVRepository) write(ctx context.Context, userID string, all []models.Product) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := r.kv.Set(ctx, key(userID), data); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}
