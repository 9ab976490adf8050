package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skinsync/skinsync/internal/common"
	"github.com/skinsync/skinsync/internal/credential"
	"github.com/skinsync/skinsync/internal/models"
)

func TestCompleteOnboarding(t *testing.T) {
	store := setupStore(t)
	auth := NewAuthService(store, credential.NewLengthPolicy(), testLogger())
	svc := NewProfileService(store, testLogger())
	ctx := context.Background()

	profile, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	require.False(t, profile.OnboardingCompleted)

	updated, err := svc.CompleteOnboarding(ctx, profile.ID, OnboardingAnswers{
		Age:      25,
		Gender:   "Female",
		SkinType: models.SkinTypeCombination,
		Concerns: []models.SkinConcern{models.ConcernAcne, models.ConcernDullness, models.ConcernAcne},
		Goal:     models.GoalClearSkin,
	})
	require.NoError(t, err)
	require.True(t, updated.OnboardingCompleted)
	require.Equal(t, 25, updated.Age)
	require.Equal(t, models.SkinTypeCombination, updated.SkinType)
	require.Equal(t, []models.SkinConcern{models.ConcernAcne, models.ConcernDullness}, updated.Concerns,
		"duplicate concerns are collapsed")

	// The flag sticks across a reload.
	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, current.OnboardingCompleted)
}

func TestCompleteOnboarding_UnknownUser(t *testing.T) {
	svc := NewProfileService(setupStore(t), testLogger())

	_, err := svc.CompleteOnboarding(context.Background(), "missing", OnboardingAnswers{})
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestUpdateProfile_PreservesIdentityAndOnboardingFlag(t *testing.T) {
	store := setupStore(t)
	auth := NewAuthService(store, credential.NewLengthPolicy(), testLogger())
	svc := NewProfileService(store, testLogger())
	ctx := context.Background()

	profile, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	_, err = svc.CompleteOnboarding(ctx, profile.ID, OnboardingAnswers{SkinType: models.SkinTypeDry})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, profile.ID, ProfileChanges{
		Name:     "Ann Lee",
		Age:      26,
		SkinType: models.SkinTypeSensitive,
		Goal:     models.GoalGlow,
	})
	require.NoError(t, err)

	require.Equal(t, "Ann Lee", updated.Name)
	require.Equal(t, models.SkinTypeSensitive, updated.SkinType)

	// Identity fields and the one-way flag survive any edit.
	require.Equal(t, profile.ID, updated.ID)
	require.Equal(t, "a@b.com", updated.Email)
	require.Equal(t, profile.CreatedAt, updated.CreatedAt)
	require.True(t, updated.OnboardingCompleted)
}
