package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/services"
)

func (a *App) ShowProfile(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	u := a.user
	printlnFn("Name:     ", u.Name)
	printlnFn("Email:    ", u.Email)
	if u.Age > 0 {
		printlnFn("Age:      ", strconv.Itoa(u.Age))
	}
	if u.Gender != "" {
		printlnFn("Gender:   ", u.Gender)
	}
	printlnFn("Skin type:", orNotSet(string(u.SkinType)))
	printlnFn("Goal:     ", orNotSet(string(u.Goal)))
	if len(u.Concerns) > 0 {
		printlnFn("Concerns: ", fmt.Sprint(u.Concerns))
	}
	printlnFn("Member since:", u.CreatedAt)
	return nil
}

// EditProfile re-prompts the editable fields, keeping the current value on
// an empty answer.
func (a *App) EditProfile(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Name ["+a.user.Name+"]", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = a.user.Name
	}

	ageText, err := GetSimpleText(a.reader, "Age ["+strconv.Itoa(a.user.Age)+"]", os.Stdout)
	if err != nil {
		return err
	}
	age := a.user.Age
	if n, err := strconv.Atoi(ageText); err == nil {
		age = n
	}

	typeIdx, err := GetChoice(a.reader, "Skin type", enumLabels(models.SkinTypes), indexOf(models.SkinTypes, a.user.SkinType), os.Stdout)
	if err != nil {
		return err
	}

	goalIdx, err := GetChoice(a.reader, "Primary goal", enumLabels(models.SkinGoals), indexOf(models.SkinGoals, a.user.Goal), os.Stdout)
	if err != nil {
		return err
	}

	concernsText, err := GetSimpleText(a.reader,
		"Concerns (comma-separated numbers, empty keeps current):\n"+numberedList(enumLabels(models.SkinConcerns)), os.Stdout)
	if err != nil {
		return err
	}
	concerns := a.user.Concerns
	if concernsText != "" {
		concerns = pickConcerns(concernsText)
	}

	updated, err := a.profile.UpdateProfile(ctx, a.user.ID, services.ProfileChanges{
		Name:     name,
		Age:      age,
		Gender:   a.user.Gender,
		SkinType: models.SkinTypes[typeIdx],
		Concerns: concerns,
		Goal:     models.SkinGoals[goalIdx],
		PhotoURL: a.user.PhotoURL,
	})
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}

	a.user = updated
	printlnFn("Profile saved.")
	return nil
}

func orNotSet(v string) string {
	if v == "" {
		return "Not set"
	}
	return v
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}
