package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/mykafka"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/token"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer

	// SessionTTL bounds how long a leaked token stays usable; 0 keeps the
	// original never-expiring behavior.
	SessionTTL time.Duration
}

type SignInResult struct {
	Token string
	Role  string
}

func (s *AuthService) SignUp(ctx context.Context, name, email, password, role string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.sign_up")

	if role == "" {
		role = RoleUser
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, fmt.Errorf("%w: role must be either 'admin' or 'user'", ErrValidation)
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("sign_up_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("sign_up_success", "user_id", user.ID)
	return user, nil
}

// SignIn returns the same Unauthorized for unknown email and wrong password
// so callers cannot enumerate accounts.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.sign_in")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	sessionToken, err := token.New()
	if err != nil {
		l.Error("sign_in_error", "reason", "cannot generate session token", "error", err)
		return nil, err
	}

	now := time.Now()
	session := &models.Session{
		UserID:    user.ID,
		Token:     sessionToken,
		Role:      user.Role,
		CreatedAt: now.Unix(),
		Active:    true,
	}
	if s.SessionTTL > 0 {
		session.ExpiresAt = now.Add(s.SessionTTL).Unix()
	}
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_signed_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("sign_in_success", "user_id", user.ID)
	return &SignInResult{Token: sessionToken, Role: user.Role}, nil
}

// SignOut is idempotent: an unknown token is not an error.
func (s *AuthService) SignOut(ctx context.Context, sessionToken string) error {
	return s.Repo.DeactivateSession(ctx, sessionToken)
}

// Authenticate resolves a bearer token to its user. Validity is entirely
// store-lookup-based, so revocation takes effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, sessionToken string) (*models.User, error) {
	session, err := s.Repo.GetActiveSessionByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid session token", ErrUnauthorized)
		}
		return nil, err
	}
	if session.ExpiresAt != 0 && time.Now().Unix() >= session.ExpiresAt {
		return nil, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	user, err := s.Repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid session token", ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}
