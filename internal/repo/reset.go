package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) GetResetTokenByUser(ctx context.Context, userID uint) (*models.PasswordResetToken, error) {
	var reset models.PasswordResetToken
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *GormRepo) GetResetToken(ctx context.Context, tokenValue string) (*models.PasswordResetToken, error) {
	var reset models.PasswordResetToken
	if err := r.DB.WithContext(ctx).Where("token = ?", tokenValue).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *GormRepo) SaveResetToken(ctx context.Context, reset *models.PasswordResetToken) error {
	return r.DB.WithContext(ctx).Save(reset).Error
}

func (r *GormRepo) CreateResetToken(ctx context.Context, reset *models.PasswordResetToken) error {
	return r.DB.WithContext(ctx).Create(reset).Error
}

func (r *GormRepo) MarkResetTokenUsed(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&models.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used", true).Error
}
