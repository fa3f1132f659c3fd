package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func TestCreateProductValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Price: 10})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "lamp", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:     "lamp",
		Price:    19.99,
		Stock:    5,
		Category: "home",
	})
	require.NoError(t, err)
	require.NotZero(t, product.ID)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, "lamp", got.Name)
	require.EqualValues(t, 5, got.Stock)
}

func TestUpdateProductPartial(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	product := createTestProduct(t, r, "chair", 50, 10)

	newPrice := 45.0
	updated, err := svc.UpdateProduct(ctx, product.ID, transport.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.Equal(t, 45.0, updated.Price)
	// Untouched fields keep their values.
	require.Equal(t, "chair", updated.Name)
	require.EqualValues(t, 10, updated.Stock)

	badPrice := -5.0
	_, err = svc.UpdateProduct(ctx, product.ID, transport.UpdateProductRequest{Price: &badPrice})
	require.ErrorIs(t, err, ErrValidation)

	name := "armchair"
	_, err = svc.UpdateProduct(ctx, product.ID+999, transport.UpdateProductRequest{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	product := createTestProduct(t, r, "desk", 120, 3)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	_, err := svc.GetProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsFiltersAndSort(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	cheap := createTestProduct(t, r, "pencil", 1, 100)
	mid := createTestProduct(t, r, "notebook", 5, 50)
	pricey := createTestProduct(t, r, "fountain pen", 80, 5)
	require.NoError(t, r.DB.Model(cheap).Update("category", "stationery").Error)
	require.NoError(t, r.DB.Model(mid).Update("category", "stationery").Error)

	items, err := svc.ListProducts(ctx, repo.ProductFilter{Category: "stationery"}, "", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	min := 2.0
	items, err = svc.ListProducts(ctx, repo.ProductFilter{MinPrice: &min}, "price_desc", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, pricey.ID, items[0].ID)
	require.Equal(t, mid.ID, items[1].ID)

	max := 10.0
	items, err = svc.ListProducts(ctx, repo.ProductFilter{Category: "stationery", MinPrice: &min, MaxPrice: &max}, "", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, mid.ID, items[0].ID)

	// Unknown sort falls back to insertion order.
	items, err = svc.ListProducts(ctx, repo.ProductFilter{}, "bogus", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, cheap.ID, items[0].ID)
}

func TestListProductsPagination(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestProduct(t, r, "bulk item", float64(i+1), 1)
	}

	page1, err := svc.ListProducts(ctx, repo.ProductFilter{}, "", 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page3, err := svc.ListProducts(ctx, repo.ProductFilter{}, "", 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	total, all, err := svc.ListAll(ctx, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, all, 5)
}

func TestSearchProducts(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	createTestProduct(t, r, "Red Wool Scarf", 25, 10)
	winter := createTestProduct(t, r, "Gloves", 15, 10)
	require.NoError(t, r.DB.Model(winter).Update("description", "warm winter scarf alternative").Error)
	createTestProduct(t, r, "Sunglasses", 40, 10)

	_, err := svc.SearchProducts(ctx, "")
	require.ErrorIs(t, err, ErrValidation)

	// Case-insensitive, matches name or description.
	items, err := svc.SearchProducts(ctx, "SCARF")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = svc.SearchProducts(ctx, "no such thing")
	require.NoError(t, err)
	require.Empty(t, items)
}
