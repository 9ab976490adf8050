package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skinsync/skinsync/internal/models"
)

func fullLogs(n int) []models.RoutineLog {
	logs := make([]models.RoutineLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, models.RoutineLog{
			Date:             fmt.Sprintf("2026-08-%02d", i+1),
			MorningCompleted: true,
			NightCompleted:   true,
		})
	}
	return logs
}

func nProducts(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Product{ID: fmt.Sprintf("p%d", i), IsMorning: true})
	}
	return out
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		logs     []models.RoutineLog
		products []models.Product
		want     int
	}{
		{
			name: "no logs no products is exactly the base",
			want: 65,
		},
		{
			name:     "seven full logs and three products caps at 100",
			logs:     fullLogs(7),
			products: nProducts(3),
			want:     100,
		},
		{
			name:     "no logs with three products adds only the bonus",
			products: nProducts(3),
			want:     70,
		},
		{
			name: "half-completed week without bonus",
			logs: []models.RoutineLog{
				{Date: "2026-08-01", MorningCompleted: true},
				{Date: "2026-08-02", NightCompleted: true},
			},
			want: 80, // 65 + 2/4 * 30
		},
		{
			name:     "only the seven most recent logs are sampled",
			logs:     append(fullLogs(7), models.RoutineLog{Date: "2026-08-28"}),
			products: nProducts(1),
			// The empty eighth log is the newest: 6 full days + 1 empty
			// day in the window -> 65 + 12/14*30 = 90.71 -> 91.
			want: 91,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, HealthScore(tc.logs, tc.products))
		})
	}
}

func TestTodayStatus_NoLogToday(t *testing.T) {
	products := []models.Product{
		{ID: "p1", IsMorning: true},
	}
	logs := []models.RoutineLog{
		{Date: "2026-08-27", MorningCompleted: true, CompletedProducts: []string{"p1"}},
	}

	status := TodayStatus(logs, products, "2026-08-28")
	require.False(t, status.Morning, "yesterday's log must not count for today")
	require.True(t, status.Night, "empty night slot is vacuously complete")
}

func TestTodayStatus_RecomputesAgainstCurrentProducts(t *testing.T) {
	// The log's cached flag says morning is done, but a product added after
	// the log was written is still missing from the completed set.
	products := []models.Product{
		{ID: "p1", IsMorning: true},
		{ID: "p2", IsMorning: true},
	}
	logs := []models.RoutineLog{
		{Date: "2026-08-28", MorningCompleted: true, CompletedProducts: []string{"p1"}},
	}

	status := TodayStatus(logs, products, "2026-08-28")
	require.False(t, status.Morning)
}

func TestSlotComplete(t *testing.T) {
	products := []models.Product{
		{ID: "p1", IsMorning: true},
		{ID: "p2", IsMorning: true},
		{ID: "p3", IsNight: true},
	}

	require.False(t, SlotComplete(products, []string{"p1"}, models.SlotMorning))
	require.True(t, SlotComplete(products, []string{"p1", "p2"}, models.SlotMorning))
	require.True(t, SlotComplete(products, []string{"p3"}, models.SlotNight))
	require.True(t, SlotComplete(nil, nil, models.SlotMorning), "empty slot is vacuously complete")
}

func TestFilterBySlot(t *testing.T) {
	products := []models.Product{
		{ID: "p1", IsMorning: true},
		{ID: "p2", IsMorning: true, IsNight: true},
		{ID: "p3", IsNight: true},
	}

	morning := FilterBySlot(products, models.SlotMorning)
	require.Len(t, morning, 2)
	require.Equal(t, "p1", morning[0].ID)

	night := FilterBySlot(products, models.SlotNight)
	require.Len(t, night, 2)
	require.Equal(t, "p2", night[0].ID)
}
