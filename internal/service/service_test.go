package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return repo.New(db)
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%s@example.com", prefix, uuid.NewString()[:8])
}

func createTestUser(t *testing.T, r *repo.GormRepo, email, password, role string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         "test user",
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, r.CreateUser(context.Background(), user))
	return user
}

func createTestProduct(t *testing.T, r *repo.GormRepo, name string, price float64, stock uint) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: "description of " + name,
		Price:       price,
		Stock:       stock,
		Category:    "misc",
	}
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}
