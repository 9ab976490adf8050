// Package models defines the persisted SkinSync entities and their enums.
// All structs marshal to the camelCase JSON shapes stored in the durable
// key-value store.
package models

// SkinType classifies a user's skin.
type SkinType string

const (
	SkinTypeOily        SkinType = "Oily"
	SkinTypeDry         SkinType = "Dry"
	SkinTypeCombination SkinType = "Combination"
	SkinTypeSensitive   SkinType = "Sensitive"
	SkinTypeAcneProne   SkinType = "Acne-Prone"
)

// SkinConcern is a self-reported problem area picked during onboarding.
type SkinConcern string

const (
	ConcernAcne         SkinConcern = "Acne"
	ConcernPigmentation SkinConcern = "Pigmentation"
	ConcernDarkSpots    SkinConcern = "Dark Spots"
	ConcernDullness     SkinConcern = "Dullness"
	ConcernDarkCircles  SkinConcern = "Dark Circles"
	ConcernWrinkles     SkinConcern = "Wrinkles"
)

// SkinGoal is the user's primary objective.
type SkinGoal string

const (
	GoalClearSkin  SkinGoal = "Clear Skin"
	GoalGlow       SkinGoal = "Natural Glow"
	GoalReduceOil  SkinGoal = "Reduce Oil"
	GoalReduceAcne SkinGoal = "Reduce Acne"
	GoalAntiAging  SkinGoal = "Anti-Aging"
)

// SkinTypes lists all selectable skin types in display order.
var SkinTypes = []SkinType{
	SkinTypeOily, SkinTypeDry, SkinTypeCombination, SkinTypeSensitive, SkinTypeAcneProne,
}

// SkinConcerns lists all selectable concerns in display order.
var SkinConcerns = []SkinConcern{
	ConcernAcne, ConcernPigmentation, ConcernDarkSpots,
	ConcernDullness, ConcernDarkCircles, ConcernWrinkles,
}

// SkinGoals lists all selectable goals in display order.
var SkinGoals = []SkinGoal{
	GoalClearSkin, GoalGlow, GoalReduceOil, GoalReduceAcne, GoalAntiAging,
}

// Genders lists the gender options offered during onboarding.
var Genders = []string{"Female", "Male", "Non-binary", "Prefer not to say"}

// UserProfile is a registered user's identity and skincare profile.
//
// Invariants:
//   - ID is assigned once at signup and never changes.
//   - Email is unique (case-sensitive) among all stored users.
//   - OnboardingCompleted transitions false->true exactly once and is never
//     reverted.
//   - CreatedAt is immutable after signup (RFC 3339).
type UserProfile struct {
	ID                  string        `json:"id"`
	Email               string        `json:"email"`
	Name                string        `json:"name"`
	Age                 int           `json:"age,omitempty"`
	Gender              string        `json:"gender,omitempty"`
	SkinType            SkinType      `json:"skinType,omitempty"`
	Concerns            []SkinConcern `json:"concerns"`
	Goal                SkinGoal      `json:"goal,omitempty"`
	PhotoURL            string        `json:"photoUrl,omitempty"`
	OnboardingCompleted bool          `json:"onboardingCompleted"`
	CreatedAt           string        `json:"createdAt"`
}

// HasConcern reports whether the profile lists the given concern.
func (u *UserProfile) HasConcern(c SkinConcern) bool {
	for _, v := range u.Concerns {
		if v == c {
			return true
		}
	}
	return false
}
