package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/storage"
)

const storageKey = "users"

// KVRepository implements Repository over the durable key-value store. The
// whole collection lives under one key and every write rewrites it.
type KVRepository struct {
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	data, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if data == nil {
		return []models.UserProfile{}, nil
	}

	var all []models.UserProfile
	if err := json.Unmarshal(data, &all); err != nil {
		// Corrupt payload degrades to an empty collection.
		return []models.UserProfile{}, nil
	}
	return all, nil
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *KVRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Email == email {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *KVRepository) Save(ctx context.Context, user *models.UserProfile) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if all[i].ID == user.ID {
			all[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *user)
	}

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := r.kv.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
