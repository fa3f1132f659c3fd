package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

// Add increments the quantity when a row for (user, product) already exists;
// no stock check happens at add-time.
func (s *CartService) Add(ctx context.Context, userID, productID, quantity uint) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return err
	}

	item, err := s.Repo.GetCartItem(ctx, userID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		return s.Repo.SaveCartItem(ctx, item)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.Repo.CreateCartItem(ctx, &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})
	default:
		return err
	}
}

// View joins each cart row with live product data. Rows whose product has
// vanished are omitted, with a warning so data-integrity issues stay visible.
func (s *CartService) View(ctx context.Context, userID uint) ([]transport.CartLine, error) {
	items, err := s.Repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]transport.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.Repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logging.FromContext(ctx).Warn("cart references missing product",
					"user_id", userID, "product_id", item.ProductID)
				continue
			}
			return nil, err
		}
		lines = append(lines, transport.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  product.Price * float64(item.Quantity),
			ImageURL:  product.ImageURL,
		})
	}
	return lines, nil
}

// Update overwrites the quantity; it is absolute, not additive.
func (s *CartService) Update(ctx context.Context, userID, productID, quantity uint) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	item, err := s.Repo.GetCartItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: item not found in cart", ErrNotFound)
		}
		return err
	}

	item.Quantity = quantity
	return s.Repo.SaveCartItem(ctx, item)
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	if err := s.Repo.DeleteCartItem(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: item not found in cart", ErrNotFound)
		}
		return err
	}
	return nil
}
