package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
)

func TestSignUp(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r}
	ctx := context.Background()

	email := uniqueEmail("signup")
	user, err := svc.SignUp(ctx, "alice", email, "password", "")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "password", user.PasswordHash)

	_, err = svc.SignUp(ctx, "alice again", email, "password", "")
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.SignUp(ctx, "bob", uniqueEmail("signup"), "password", "superuser")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.SignUp(ctx, "bob", "", "password", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.SignUp(ctx, "bob", uniqueEmail("signup"), "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestSignInUniformRejection(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r}
	ctx := context.Background()

	email := uniqueEmail("signin")
	createTestUser(t, r, email, "password", "user")

	_, err := svc.SignIn(ctx, email, "wrong_password")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SignIn(ctx, uniqueEmail("nobody"), "password")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignInAndAuthenticate(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r}
	ctx := context.Background()

	email := uniqueEmail("signin")
	user := createTestUser(t, r, email, "password", "admin")

	res, err := svc.SignIn(ctx, email, "password")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "admin", res.Role)

	got, err := svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	// Two sign-ins yield two independent sessions.
	res2, err := svc.SignIn(ctx, email, "password")
	require.NoError(t, err)
	require.NotEqual(t, res.Token, res2.Token)
}

func TestSignOutRevokesImmediately(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r}
	ctx := context.Background()

	email := uniqueEmail("signout")
	createTestUser(t, r, email, "password", "user")

	res, err := svc.SignIn(ctx, email, "password")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, res.Token))

	_, err = svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, ErrUnauthorized)

	// Idempotent, also for tokens that never existed.
	require.NoError(t, svc.SignOut(ctx, res.Token))
	require.NoError(t, svc.SignOut(ctx, "no_such_token"))
}

func TestSessionExpiry(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, SessionTTL: time.Hour}
	ctx := context.Background()

	email := uniqueEmail("expiry")
	createTestUser(t, r, email, "password", "user")

	res, err := svc.SignIn(ctx, email, "password")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, r.DB.Model(&models.Session{}).
		Where("token = ?", res.Token).
		Update("expires_at", time.Now().Add(-time.Minute).Unix()).Error)

	_, err = svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}
