package models

// SkinPhoto is one entry in a user's progress timeline. Photos are created
// and deleted but never updated in place; the per-user collection is kept in
// descending Timestamp order.
type SkinPhoto struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	ImageURL  string `json:"imageUrl"`
	Note      string `json:"note"`
}
