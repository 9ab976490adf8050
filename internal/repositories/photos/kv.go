package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/storage"
)

const keyPrefix = "photos:"

// KVRepository implements Repository over the durable key-value store.
type KVRepository struct {
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (r *KVRepository) List(ctx context.Context, userID string) ([]models.SkinPhoto, error) {
	data, err := r.kv.Get(ctx, key(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read photos: %w", err)
	}
	if data == nil {
		return []models.SkinPhoto{}, nil
	}

	var all []models.SkinPhoto
	if err := json.Unmarshal(data, &all); err != nil {
		return []models.SkinPhoto{}, nil
	}
	return all, nil
}

func (r *KVRepository) Add(ctx context.Context, userID string, photo *models.SkinPhoto) error {
	all, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	all = append(all, *photo)
	sort.SliceStable(all, func(i, j int) bool {
		return parseTimestamp(all[i].Timestamp).After(parseTimestamp(all[j].Timestamp))
	})

	return r.write(ctx, userID, all)
}

func (r *KVRepository) Delete(ctx context.Context, userID string, photoID string) error {
	all, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, p := range all {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}

	return r.write(ctx, userID, kept)
}

func (r *KVRepository) write(ctx context.Context, userID string, all []models.SkinPhoto) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal photos: %w", err)
	}
	if err := r.kv.Set(ctx, key(userID), data); err != nil {
		return fmt.Errorf("failed to save photos: %w", err)
	}
	return nil
}

// parseTimestamp tolerates malformed timestamps, sorting them last.
func parseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
