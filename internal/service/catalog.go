package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/mykafka"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service/search"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Search   *search.Service
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// ListProducts applies the provided filters conjunctively; unset filters are
// no-ops. Unknown sort values fall back to insertion order.
func (s *CatalogService) ListProducts(ctx context.Context, filter repo.ProductFilter, sort string, page, size int) ([]models.Product, error) {
	offset, limit := util.Calculate(page, size)
	return s.Repo.ListProducts(ctx, filter, sort, offset, limit)
}

// ListAll is the admin listing: paginated, unfiltered, with a total count.
func (s *CatalogService) ListAll(ctx context.Context, page, size int) (int64, []models.Product, error) {
	offset, limit := util.Calculate(page, size)

	total, err := s.Repo.CountProducts(ctx, repo.ProductFilter{})
	if err != nil {
		return 0, nil, err
	}
	items, err := s.Repo.ListProducts(ctx, repo.ProductFilter{}, "", offset, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrValidation)
	}
	return s.Repo.SearchProducts(ctx, keyword)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, product, false)
	publish(ctx, s.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, product, false)
	publish(ctx, s.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return err
	}

	s.syncIndex(ctx, &models.Product{ID: id}, true)
	publish(ctx, s.Producer, "product_events", fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return nil
}

// syncIndex mirrors the mutation into Elasticsearch best-effort.
func (s *CatalogService) syncIndex(ctx context.Context, product *models.Product, deleted bool) {
	if !s.Search.Enabled() {
		return
	}

	var err error
	if deleted {
		err = s.Search.DeleteProduct(ctx, product.ID)
	} else {
		err = s.Search.IndexProduct(ctx, product)
	}
	if err != nil {
		logging.FromContext(ctx).Warn("es index sync error", "product_id", product.ID, "error", err)
	}
}
