package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skinsync/skinsync/internal/storage"
)

const storageKey = "session"

// KVRepository implements Repository over the durable key-value store. The
// pointer is stored as a JSON string under a fixed key.
type KVRepository struct {
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) Get(ctx context.Context) (string, error) {
	data, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	if data == nil {
		return "", nil
	}

	var userID string
	if err := json.Unmarshal(data, &userID); err != nil {
		// A corrupt pointer means no restorable session.
		return "", nil
	}
	return userID, nil
}

func (r *KVRepository) Set(ctx context.Context, userID string) error {
	data, err := json.Marshal(userID)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.kv.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
