// Package cli implements the reference front end of the SkinSync core: a
// small REPL that drives the auth gate, the profile/routine/photo services,
// and the derived-state computations. The core itself is UI-agnostic; this
// package is the "external collaborator" that consumes it.
package cli

import (
	"bufio"
	"context"
	"os"

	_ "modernc.org/sqlite"

	"github.com/skinsync/skinsync/internal/config"
	"github.com/skinsync/skinsync/internal/credential"
	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/services"
	"github.com/skinsync/skinsync/internal/storage"
)

// App wires the services together and carries per-session REPL state: the
// cached current user and the active routine tab.
type App struct {
	config  *config.Config
	store   *storage.Store
	auth    services.AuthService
	profile services.ProfileService
	routine services.RoutineService
	photos  services.PhotoService
	log     logging.Logger

	user   *models.UserProfile
	tab    models.Slot
	reader *bufio.Reader
}

// NewApp opens the durable store and constructs all services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		store:   store,
		auth:    services.NewAuthService(store, credential.NewLengthPolicy(), log),
		profile: services.NewProfileService(store, log),
		routine: services.NewRoutineService(store, log),
		photos:  services.NewPhotoService(store, log),
		log:     log,
		tab:     models.SlotMorning,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the prior session and enters the REPL. It must not render
// anything before Initialize resolves.
func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	if err := a.auth.Initialize(ctx); err != nil {
		return err
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.user = user

	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
