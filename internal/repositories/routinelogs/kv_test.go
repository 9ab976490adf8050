package routinelogs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/storage"
)

func setupRepo(t *testing.T) *KVRepository {
	t.Helper()
	s, err := storage.Open(context.Background(), "file:logs_repo_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Clear(context.Background()))
	return NewKVRepository(s)
}

func TestSave_UpsertsByDate(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	log := &models.RoutineLog{Date: "2026-08-28", CompletedProducts: []string{"p1"}}
	require.NoError(t, r.Save(ctx, "u1", log))

	log.CompletedProducts = []string{"p1", "p2"}
	log.MorningCompleted = true
	require.NoError(t, r.Save(ctx, "u1", log))

	all, err := r.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1, "at most one log per date")
	require.True(t, all[0].MorningCompleted)
	require.Equal(t, []string{"p1", "p2"}, all[0].CompletedProducts)
}

func TestGetByDate(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "u1", &models.RoutineLog{Date: "2026-08-27"}))
	require.NoError(t, r.Save(ctx, "u1", &models.RoutineLog{Date: "2026-08-28", NightCompleted: true}))

	got, err := r.GetByDate(ctx, "u1", "2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.NightCompleted)

	got, err = r.GetByDate(ctx, "u1", "2026-08-26")
	require.NoError(t, err)
	require.Nil(t, got, "no log exists until the first toggle of that day")
}
