package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) CreateSession(ctx context.Context, session *models.Session) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

func (r *GormRepo) GetActiveSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := r.DB.WithContext(ctx).
		Where("token = ? AND active = ?", token, true).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeactivateSession marks the session inactive. Sessions are never deleted,
// so a signed-out token stays rejected forever.
func (r *GormRepo) DeactivateSession(ctx context.Context, token string) error {
	return r.DB.WithContext(ctx).Model(&models.Session{}).
		Where("token = ?", token).
		Update("active", false).Error
}
