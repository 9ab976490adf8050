package cli

import (
	"context"
	"errors"
	"os"

	"github.com/skinsync/skinsync/internal/common"
)

// Register creates a new account and leaves the user logged in with an
// uncompleted onboarding, prompting them to run it.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.SignUp(ctx, email, secret, name)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists. Try 'login'.")
			return err
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.user = profile
	printlnFn("Welcome,", profile.Name+"! Run 'onboard' to set up your skin profile.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.LogIn(ctx, email, secret)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredential):
			printlnFn("Invalid credentials.")
		case errors.Is(err, common.ErrUserNotFound):
			printlnFn("User not found. Please sign up.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.user = profile
	printlnFn("Welcome back,", profile.Name+"!")
	return nil
}

// Reset requests a password-reset link. The outcome message is the same
// whether or not the account exists.
func (a *App) Reset(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	printlnFn("If the account exists, a reset link has been sent.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.LogOut(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
