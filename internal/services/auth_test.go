package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/skinsync/skinsync/internal/common"
	"github.com/skinsync/skinsync/internal/credential"
	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/repositories/users"
	"github.com/skinsync/skinsync/internal/storage"
)

var storeSeq int

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	storeSeq++
	s, err := storage.Open(context.Background(), fmt.Sprintf("file:services_tests_%d?mode=memory&cache=shared", storeSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newAuth(t *testing.T) (AuthService, *storage.Store) {
	t.Helper()
	s := setupStore(t)
	return NewAuthService(s, credential.NewLengthPolicy(), testLogger()), s
}

func TestSignUp_FreshEmail(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	profile, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	require.False(t, profile.OnboardingCompleted)
	require.Empty(t, profile.Concerns)
	require.NotEmpty(t, profile.CreatedAt)

	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, profile.ID, current.ID)
	require.False(t, current.OnboardingCompleted)
}

func TestSignUp_DuplicateEmail_PersistsNothing(t *testing.T) {
	auth, store := newAuth(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)

	_, err = auth.SignUp(ctx, "a@b.com", "other-secret", "Impostor")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	all, err := users.NewKVRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestLogIn_ShortCredential_FailsBeforeLookup(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	require.NoError(t, auth.LogOut(ctx))

	// Too short, even though the user exists.
	_, err = auth.LogIn(ctx, "a@b.com", "x")
	require.ErrorIs(t, err, common.ErrInvalidCredential)

	// Too short for a user that does not exist either.
	_, err = auth.LogIn(ctx, "nobody@b.com", "x")
	require.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestLogIn_UnknownEmail(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.LogIn(context.Background(), "nobody@b.com", "long-enough")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestLogIn_SetsSession(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	signedUp, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	require.NoError(t, auth.LogOut(ctx))

	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	loggedIn, err := auth.LogIn(ctx, "a@b.com", "whatever-long")
	require.NoError(t, err)
	require.Equal(t, signedUp.ID, loggedIn.ID)

	current, err = auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, signedUp.ID, current.ID)
}

func TestInitialize_RestoresPersistedSession(t *testing.T) {
	auth, store := newAuth(t)
	ctx := context.Background()

	profile, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)

	// A fresh gate over the same store starts logged out until initialized.
	restarted := NewAuthService(store, credential.NewLengthPolicy(), testLogger())
	current, err := restarted.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	require.NoError(t, restarted.Initialize(ctx))
	current, err = restarted.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, profile.ID, current.ID)
}

func TestCurrentUser_DanglingPointerReadsAsLoggedOut(t *testing.T) {
	auth, store := newAuth(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)

	// Wipe the user collection out from under the session pointer.
	require.NoError(t, store.Delete(ctx, "users"))

	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestRequestPasswordReset_AlwaysSucceeds(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	require.NoError(t, auth.RequestPasswordReset(ctx, "nobody@b.com"))

	_, err := auth.SignUp(ctx, "a@b.com", "secret", "Ann")
	require.NoError(t, err)
	require.NoError(t, auth.RequestPasswordReset(ctx, "a@b.com"))
}
