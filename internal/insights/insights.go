// Package insights computes derived values from repository reads: the skin
// health score, today's routine status, and slot-completion checks. All
// functions are pure; nothing here touches storage, and callers may re-invoke
// freely on every render.
package insights

import (
	"math"
	"sort"

	"github.com/skinsync/skinsync/internal/models"
)

const (
	baseScore      = 65
	consistencyMax = 30
	productBonus   = 5
	maxScore       = 100

	// scoreWindow is how many of the most recent logs feed the
	// consistency term.
	scoreWindow = 7

	// productBonusThreshold is the routine size that earns the flat bonus.
	productBonusThreshold = 3
)

// RoutineStatus is the completion state of one calendar day.
type RoutineStatus struct {
	Morning bool
	Night   bool
}

// HealthScore returns the 0-100 skin health score: a base of 65, up to 30
// scaled by the completion ratio over the most recent (at most) seven logs,
// and a flat +5 for a routine of three or more products, capped at 100.
// With zero logs the consistency term is skipped entirely.
func HealthScore(logs []models.RoutineLog, products []models.Product) int {
	score := float64(baseScore)

	recent := recentLogs(logs, scoreWindow)
	if len(recent) > 0 {
		completed := 0
		for _, l := range recent {
			if l.MorningCompleted {
				completed++
			}
			if l.NightCompleted {
				completed++
			}
		}
		score += float64(completed) / float64(len(recent)*2) * consistencyMax
	}

	if len(products) >= productBonusThreshold {
		score += productBonus
	}

	rounded := int(math.Round(score))
	if rounded > maxScore {
		return maxScore
	}
	return rounded
}

// recentLogs returns the n latest logs by date. Logs are stored in
// first-toggle order, which is chronological in practice, but sorting keeps
// the sample correct whatever order the collection arrives in.
func recentLogs(logs []models.RoutineLog, n int) []models.RoutineLog {
	sorted := make([]models.RoutineLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	if len(sorted) <= n {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// TodayStatus reports whether today's morning and night routines are
// complete. Completion is recomputed from today's completed set against the
// current product collection rather than read from the cached log flags, so
// a product deleted after the log was written cannot leave a stale "done".
// With no log for today, a slot with products is incomplete.
//
// A slot with no products assigned reports complete: "every product done"
// over an empty set holds vacuously. Whether an empty routine should instead
// read "not applicable" is an open product question; this is the original
// behavior, pinned by tests.
func TodayStatus(logs []models.RoutineLog, products []models.Product, today string) RoutineStatus {
	var completed []string
	for i := range logs {
		if logs[i].Date == today {
			completed = logs[i].CompletedProducts
			break
		}
	}
	return RoutineStatus{
		Morning: SlotComplete(products, completed, models.SlotMorning),
		Night:   SlotComplete(products, completed, models.SlotNight),
	}
}

// SlotComplete reports whether every product tagged for the slot appears in
// the completed set. An empty slot is vacuously complete.
func SlotComplete(products []models.Product, completed []string, slot models.Slot) bool {
	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		done[id] = struct{}{}
	}
	for i := range products {
		if !products[i].InSlot(slot) {
			continue
		}
		if _, ok := done[products[i].ID]; !ok {
			return false
		}
	}
	return true
}

// FilterBySlot returns the products tagged for the given slot, preserving
// collection order.
func FilterBySlot(products []models.Product, slot models.Slot) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.InSlot(slot) {
			out = append(out, p)
		}
	}
	return out
}
