// Package services contains the application services of the SkinSync core:
// the session/auth gate and the profile, routine, and photo flows. Services
// are constructed once at process start and passed to consumers; there is no
// ambient singleton state.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skinsync/skinsync/internal/common"
	"github.com/skinsync/skinsync/internal/credential"
	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/repositories/session"
	"github.com/skinsync/skinsync/internal/repositories/users"
	"github.com/skinsync/skinsync/internal/storage"
)

// AuthService is the only entry point that changes identity. It owns the
// single session pointer and mediates signup, login, and logout.
//
// Contract:
//   - Initialize must complete before any other call; it restores the
//     persisted session so a returning user stays logged in.
//   - SignUp fails with common.ErrDuplicateEmail on an exact email match.
//   - LogIn fails with common.ErrInvalidCredential before any lookup and
//     with common.ErrUserNotFound for an unknown email.
//   - CurrentUser never fails on a missing session or a dangling pointer;
//     both read as "logged out".
type AuthService interface {
	Initialize(ctx context.Context) error
	SignUp(ctx context.Context, email, secret, name string) (*models.UserProfile, error)
	LogIn(ctx context.Context, email, secret string) (*models.UserProfile, error)
	LogOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

type authService struct {
	store   *storage.Store
	policy  credential.Policy
	log     logging.Logger
	now     func() time.Time
	current string
}

// NewAuthService constructs the auth gate over the given store. The policy
// decides how secrets are checked; the default length heuristic carries no
// stored state.
func NewAuthService(store *storage.Store, policy credential.Policy, log logging.Logger) AuthService {
	return &authService{
		store:  store,
		policy: policy,
		log:    log,
		now:    time.Now,
	}
}

func (a *authService) getUserRepo() users.Repository {
	return users.NewKVRepository(a.store)
}

func (a *authService) getSessionRepo() session.Repository {
	return session.NewKVRepository(a.store)
}

// Initialize restores the session pointer from the durable store. The UI
// must await it before rendering authenticated views.
func (a *authService) Initialize(ctx context.Context) error {
	id, err := a.getSessionRepo().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	a.current = id
	if id != "" {
		a.log.Info(ctx, "session restored", "user_id", id)
	}
	return nil
}

func (a *authService) SignUp(ctx context.Context, email, secret, name string) (*models.UserProfile, error) {
	userRepo := a.getUserRepo()

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrDuplicateEmail
	}

	if err := a.policy.OnSignUp(ctx, email, secret); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:                  uuid.NewString(),
		Email:               email,
		Name:                name,
		Concerns:            []models.SkinConcern{},
		OnboardingCompleted: false,
		CreatedAt:           a.now().UTC().Format(time.RFC3339),
	}

	if err := userRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	if err := a.setSession(ctx, profile.ID); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user signed up", "user_id", profile.ID)
	return profile, nil
}

func (a *authService) LogIn(ctx context.Context, email, secret string) (*models.UserProfile, error) {
	if err := a.policy.Verify(ctx, email, secret); err != nil {
		return nil, err
	}

	user, err := a.getUserRepo().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	if err := a.setSession(ctx, user.ID); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

func (a *authService) LogOut(ctx context.Context) error {
	a.current = ""
	if err := a.getSessionRepo().Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "user logged out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	if a.current == "" {
		return nil, nil
	}
	// A dangling pointer (user record gone) reads as logged out.
	return a.getUserRepo().GetByID(ctx, a.current)
}

// RequestPasswordReset simulates sending a reset link. It reports success
// whether or not the email belongs to an account, so callers cannot probe
// for registered addresses.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	a.log.Info(ctx, "password reset link requested")
	return nil
}

func (a *authService) setSession(ctx context.Context, userID string) error {
	if err := a.getSessionRepo().Set(ctx, userID); err != nil {
		return err
	}
	a.current = userID
	return nil
}
