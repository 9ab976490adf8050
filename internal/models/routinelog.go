package models

// DateLayout is the storage format for RoutineLog dates.
const DateLayout = "2006-01-02"

// RoutineLog records which products a user completed on one calendar day.
// At most one log exists per (user, date); logs are upserted by Date.
//
// MorningCompleted and NightCompleted are caches of "every product tagged for
// the slot is in CompletedProducts" as of the last write. Readers that care
// about the current product set should recompute via the insights package.
type RoutineLog struct {
	Date              string   `json:"date"`
	MorningCompleted  bool     `json:"morningCompleted"`
	NightCompleted    bool     `json:"nightCompleted"`
	CompletedProducts []string `json:"completedProducts"`
}

// Completed reports whether the given product id is in the completed set.
func (l *RoutineLog) Completed(productID string) bool {
	for _, id := range l.CompletedProducts {
		if id == productID {
			return true
		}
	}
	return false
}
