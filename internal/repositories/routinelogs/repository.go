// Package routinelogs persists each user's daily routine-completion logs.
package routinelogs

import (
	"context"

	"github.com/skinsync/skinsync/internal/models"
)

// Repository is the storage contract for a user's routine logs. Logs are
// keyed by calendar date (YYYY-MM-DD), at most one per date; Save upserts by
// date, not by an opaque id. Logs are never deleted.
type Repository interface {
	// List returns the user's logs. Missing or corrupt data yields an empty
	// slice, never an error.
	List(ctx context.Context, userID string) ([]models.RoutineLog, error)

	// GetByDate returns the log for the given date, or nil if absent.
	GetByDate(ctx context.Context, userID string, date string) (*models.RoutineLog, error)

	// Save upserts the log by date.
	Save(ctx context.Context, userID string, log *models.RoutineLog) error
}
