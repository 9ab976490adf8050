package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skinsync/skinsync/internal/models"
)

func newRoutine(t *testing.T) *routineService {
	t.Helper()
	s := setupStore(t)
	svc := NewRoutineService(s, testLogger()).(*routineService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAddProduct_RoundTrip(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "u1", NewProduct{
		Name: "Vitamin C Serum", Brand: "The Ordinary", Type: models.ProductSerum, Morning: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	all, err := svc.Products(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, p.ID, all[0].ID)
	require.True(t, all[0].IsMorning)
	require.False(t, all[0].IsNight)
}

func TestAddProduct_BothSlots(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Moisturizer", Type: models.ProductMoisturizer, Morning: true, Night: true})
	require.NoError(t, err)

	morning, err := svc.ProductsForSlot(ctx, "u1", models.SlotMorning)
	require.NoError(t, err)
	night, err := svc.ProductsForSlot(ctx, "u1", models.SlotNight)
	require.NoError(t, err)

	require.Len(t, morning, 1)
	require.Len(t, night, 1)
	require.Equal(t, p.ID, morning[0].ID)
}

func TestToggleProduct_CompletesAndUncompletesSlot(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p1, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Cleanser", Type: models.ProductCleanser, Morning: true})
	require.NoError(t, err)
	p2, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Sunscreen", Type: models.ProductSunscreen, Morning: true})
	require.NoError(t, err)

	entry, err := svc.ToggleProduct(ctx, "u1", p1.ID, models.SlotMorning)
	require.NoError(t, err)
	require.Equal(t, "2026-08-28", entry.Date)
	require.False(t, entry.MorningCompleted, "one of two products done")

	entry, err = svc.ToggleProduct(ctx, "u1", p2.ID, models.SlotMorning)
	require.NoError(t, err)
	require.True(t, entry.MorningCompleted)
	require.False(t, entry.NightCompleted)

	// Toggling one back off un-completes the slot.
	entry, err = svc.ToggleProduct(ctx, "u1", p1.ID, models.SlotMorning)
	require.NoError(t, err)
	require.False(t, entry.MorningCompleted)
	require.Equal(t, []string{p2.ID}, entry.CompletedProducts)
}

func TestTodayStatus(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Cleanser", Type: models.ProductCleanser, Morning: true})
	require.NoError(t, err)

	// No log yet: the populated slot is incomplete, the empty slot is
	// vacuously complete.
	status, err := svc.TodayStatus(ctx, "u1")
	require.NoError(t, err)
	require.False(t, status.Morning)
	require.True(t, status.Night)

	_, err = svc.ToggleProduct(ctx, "u1", p.ID, models.SlotMorning)
	require.NoError(t, err)

	status, err = svc.TodayStatus(ctx, "u1")
	require.NoError(t, err)
	require.True(t, status.Morning)
}

func TestTodayStatus_StaleFlagAfterProductAdded(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p1, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Cleanser", Type: models.ProductCleanser, Morning: true})
	require.NoError(t, err)

	entry, err := svc.ToggleProduct(ctx, "u1", p1.ID, models.SlotMorning)
	require.NoError(t, err)
	require.True(t, entry.MorningCompleted)

	// A product added after the log was written invalidates the cached
	// flag; status must reflect the current product set.
	_, err = svc.AddProduct(ctx, "u1", NewProduct{Name: "Sunscreen", Type: models.ProductSunscreen, Morning: true})
	require.NoError(t, err)

	status, err := svc.TodayStatus(ctx, "u1")
	require.NoError(t, err)
	require.False(t, status.Morning)
}

func TestDeleteProduct(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Toner", Type: models.ProductToner, Night: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, "u1", p.ID))

	all, err := svc.Products(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, all)

	require.NoError(t, svc.DeleteProduct(ctx, "u1", p.ID), "deleting again is a no-op")
}

func TestHealthScore_ThroughService(t *testing.T) {
	svc := newRoutine(t)
	ctx := context.Background()

	score, err := svc.HealthScore(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 65, score)

	p, err := svc.AddProduct(ctx, "u1", NewProduct{Name: "Cleanser", Type: models.ProductCleanser, Morning: true})
	require.NoError(t, err)
	_, err = svc.ToggleProduct(ctx, "u1", p.ID, models.SlotMorning)
	require.NoError(t, err)

	// One log with morning done: 65 + 1/2*30 = 80.
	score, err = svc.HealthScore(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 80, score)
}
