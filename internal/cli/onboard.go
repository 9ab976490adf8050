package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/services"
)

// Onboard walks the four-step questionnaire and completes onboarding.
func (a *App) Onboard(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}
	if a.user.OnboardingCompleted {
		printlnFn("Onboarding is already complete. Use 'edit' to change your profile.")
		return nil
	}

	ageText, err := GetSimpleText(a.reader, "Your age", os.Stdout)
	if err != nil {
		return err
	}
	age, _ := strconv.Atoi(ageText)

	genderIdx, err := GetChoice(a.reader, "Gender", models.Genders, len(models.Genders)-1, os.Stdout)
	if err != nil {
		return err
	}

	typeIdx, err := GetChoice(a.reader, "Skin type", enumLabels(models.SkinTypes), 2, os.Stdout)
	if err != nil {
		return err
	}

	concernsText, err := GetSimpleText(a.reader,
		"Concerns (comma-separated numbers):\n"+numberedList(enumLabels(models.SkinConcerns)), os.Stdout)
	if err != nil {
		return err
	}
	concerns := pickConcerns(concernsText)

	goalIdx, err := GetChoice(a.reader, "Primary goal", enumLabels(models.SkinGoals), 0, os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.profile.CompleteOnboarding(ctx, a.user.ID, services.OnboardingAnswers{
		Age:      age,
		Gender:   models.Genders[genderIdx],
		SkinType: models.SkinTypes[typeIdx],
		Concerns: concerns,
		Goal:     models.SkinGoals[goalIdx],
	})
	if err != nil {
		printlnFn("Onboarding failed:", err.Error())
		return err
	}

	a.user = updated
	printlnFn("All set! Your skin profile is ready.")
	return nil
}

func enumLabels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func numberedList(options []string) string {
	var b strings.Builder
	for i, o := range options {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(") ")
		b.WriteString(o)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func pickConcerns(input string) []models.SkinConcern {
	out := make([]models.SkinConcern, 0)
	for _, part := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(models.SkinConcerns) {
			continue
		}
		out = append(out, models.SkinConcerns[n-1])
	}
	return out
}
