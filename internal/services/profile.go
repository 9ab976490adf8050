package services

import (
	"context"

	"github.com/skinsync/skinsync/internal/common"
	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/repositories/users"
	"github.com/skinsync/skinsync/internal/storage"
)

// OnboardingAnswers carries the questionnaire results.
type OnboardingAnswers struct {
	Age      int
	Gender   string
	SkinType models.SkinType
	Concerns []models.SkinConcern
	Goal     models.SkinGoal
}

// ProfileChanges carries the editable profile fields. Identity fields
// (id, email, createdAt) and the onboarding flag are not editable here.
type ProfileChanges struct {
	Name     string
	Age      int
	Gender   string
	SkinType models.SkinType
	Concerns []models.SkinConcern
	Goal     models.SkinGoal
	PhotoURL string
}

// ProfileService manages the onboarding questionnaire and profile edits.
type ProfileService interface {
	// CompleteOnboarding applies the answers and flips onboardingCompleted
	// to true. It is the only operation allowed to set the flag, and the
	// flag is never reverted afterwards.
	CompleteOnboarding(ctx context.Context, userID string, answers OnboardingAnswers) (*models.UserProfile, error)

	// UpdateProfile applies the changes, preserving id, email, createdAt,
	// and onboardingCompleted whatever the caller passes.
	UpdateProfile(ctx context.Context, userID string, changes ProfileChanges) (*models.UserProfile, error)
}

type profileService struct {
	store *storage.Store
	log   logging.Logger
}

func NewProfileService(store *storage.Store, log logging.Logger) ProfileService {
	return &profileService{store: store, log: log}
}

func (s *profileService) getUserRepo() users.Repository {
	return users.NewKVRepository(s.store)
}

func (s *profileService) CompleteOnboarding(ctx context.Context, userID string, answers OnboardingAnswers) (*models.UserProfile, error) {
	userRepo := s.getUserRepo()

	profile, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, common.ErrUserNotFound
	}

	profile.Age = answers.Age
	profile.Gender = answers.Gender
	profile.SkinType = answers.SkinType
	profile.Concerns = normalizeConcerns(answers.Concerns)
	profile.Goal = answers.Goal
	profile.OnboardingCompleted = true

	if err := userRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "onboarding completed", "user_id", userID)
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, changes ProfileChanges) (*models.UserProfile, error) {
	userRepo := s.getUserRepo()

	profile, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, common.ErrUserNotFound
	}

	profile.Name = changes.Name
	profile.Age = changes.Age
	profile.Gender = changes.Gender
	profile.SkinType = changes.SkinType
	profile.Concerns = normalizeConcerns(changes.Concerns)
	profile.Goal = changes.Goal
	profile.PhotoURL = changes.PhotoURL

	if err := userRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "profile updated", "user_id", userID)
	return profile, nil
}

// normalizeConcerns keeps the stored shape a list (never null) and drops
// duplicates while preserving first-seen order.
func normalizeConcerns(concerns []models.SkinConcern) []models.SkinConcern {
	out := make([]models.SkinConcern, 0, len(concerns))
	seen := make(map[models.SkinConcern]struct{}, len(concerns))
	for _, c := range concerns {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
