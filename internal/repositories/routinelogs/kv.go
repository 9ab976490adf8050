package routinelogs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/storage"
)

const keyPrefix = "logs:"

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

func (r *KVRepository) List(ctx context.Context, userID string) ([]models.RoutineLog, error) {
	data, err := r.kv.Get(ctx, key(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read routine logs: %w", err)
	}
	if data == nil {
		return []models.RoutineLog{}, nil
	}

	var all []models.RoutineLog
	if err := json.Unmarshal(data, &all); err != nil {
		return []models.RoutineLog{}, nil
	}
	return all, nil
}

func (r *KVRepository) GetByDate(ctx context.Context, userID string, date string) (*models.RoutineLog, error) {
	all, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Date == date {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *KVRepository) Save(ctx context.Context, userID string, log *models.RoutineLog) error {
	all, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if all[i].Date == log.Date {
			all[i] = *log
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *log)
	}

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal routine logs: %w", err)
	}
	if err := r.kv.Set(ctx, key(userID), data); err != nil {
		return fmt.Errorf("failed to save routine logs: %w", err)
	}
	return nil
}
