package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/mailer"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/token"
)

const resetTokenTTL = time.Hour

type ResetService struct {
	Repo   *repo.GormRepo
	Mailer *mailer.Mailer
}

// RequestReset issues a fresh time-boxed token and mails it out. A repeat
// request overwrites the previous token, so at most one is live per user.
// Mail delivery failure is logged only; the token stays persisted and usable.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	l := logging.FromContext(ctx).With("svc", "reset.request_reset")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: email not found", ErrNotFound)
		}
		return err
	}

	resetToken, err := token.New()
	if err != nil {
		l.Error("request_reset_error", "reason", "cannot generate reset token", "error", err)
		return err
	}
	expiresAt := time.Now().Add(resetTokenTTL).Unix()

	existing, err := s.Repo.GetResetTokenByUser(ctx, user.ID)
	switch {
	case err == nil:
		existing.Token = resetToken
		existing.ExpiresAt = expiresAt
		existing.Used = false
		if err := s.Repo.SaveResetToken(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		reset := &models.PasswordResetToken{
			UserID:    user.ID,
			Token:     resetToken,
			ExpiresAt: expiresAt,
		}
		if err := s.Repo.CreateResetToken(ctx, reset); err != nil {
			return err
		}
	default:
		return err
	}

	if err := s.Mailer.SendResetToken(user.Email, resetToken); err != nil {
		l.Error("request_reset_mail_error", "user_id", user.ID, "error", err)
	}

	l.Info("request_reset_success", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a token: once used or expired it can never be
// replayed, and the old password hash becomes permanently invalid.
func (s *ResetService) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	l := logging.FromContext(ctx).With("svc", "reset.reset_password")

	reset, err := s.Repo.GetResetToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown reset token", ErrTokenInvalid)
		}
		return err
	}
	if reset.Used || time.Now().Unix() >= reset.ExpiresAt {
		return fmt.Errorf("%w: reset token used or expired", ErrTokenInvalid)
	}

	pwHash, err := hash.HashPassword(newPassword)
	if err != nil {
		l.Error("reset_password_error", "reason", "cannot hash the password", "error", err)
		return err
	}

	if err := s.Repo.UpdateUserPassword(ctx, reset.UserID, pwHash); err != nil {
		return err
	}
	if err := s.Repo.MarkResetTokenUsed(ctx, reset.ID); err != nil {
		return err
	}

	l.Info("reset_password_success", "user_id", reset.UserID)
	return nil
}
