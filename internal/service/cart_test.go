package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
)

func TestCartAddIsAdditive(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, uniqueEmail("cart"), "password", "user")
	product := createTestProduct(t, r, "mug", 8, 20)

	require.NoError(t, svc.Add(ctx, user.ID, product.ID, 2))
	require.NoError(t, svc.Add(ctx, user.ID, product.ID, 3))

	lines, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.EqualValues(t, 5, lines[0].Quantity)
	require.Equal(t, 40.0, lines[0].Subtotal)

	err = svc.Add(ctx, user.ID, product.ID, 0)
	require.ErrorIs(t, err, ErrValidation)

	err = svc.Add(ctx, user.ID, product.ID+999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartUpdateIsAbsolute(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, uniqueEmail("cart"), "password", "user")
	product := createTestProduct(t, r, "plate", 12, 20)

	require.NoError(t, svc.Add(ctx, user.ID, product.ID, 4))
	require.NoError(t, svc.Update(ctx, user.ID, product.ID, 2))

	lines, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.EqualValues(t, 2, lines[0].Quantity)

	err = svc.Update(ctx, user.ID, product.ID, 0)
	require.ErrorIs(t, err, ErrValidation)

	err = svc.Update(ctx, user.ID, product.ID+999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartRemove(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, uniqueEmail("cart"), "password", "user")
	product := createTestProduct(t, r, "bowl", 9, 20)

	require.NoError(t, svc.Add(ctx, user.ID, product.ID, 1))
	require.NoError(t, svc.Remove(ctx, user.ID, product.ID))

	lines, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, lines)

	err = svc.Remove(ctx, user.ID, product.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartViewSkipsVanishedProducts(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, uniqueEmail("cart"), "password", "user")
	keep := createTestProduct(t, r, "keeper", 10, 20)
	gone := createTestProduct(t, r, "goner", 10, 20)

	require.NoError(t, svc.Add(ctx, user.ID, keep.ID, 1))
	require.NoError(t, svc.Add(ctx, user.ID, gone.ID, 1))

	require.NoError(t, r.DB.Delete(&models.Product{}, gone.ID).Error)

	lines, err := svc.View(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, keep.ID, lines[0].ProductID)
}

func TestCartIsPerUser(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	alice := createTestUser(t, r, uniqueEmail("alice"), "password", "user")
	bob := createTestUser(t, r, uniqueEmail("bob"), "password", "user")
	product := createTestProduct(t, r, "teapot", 30, 20)

	require.NoError(t, svc.Add(ctx, alice.ID, product.ID, 2))

	lines, err := svc.View(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, lines)
}
