package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/mykafka"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const OrderStatusPaid = "paid"

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// Checkout turns the user's cart into an immutable order. The whole
// read-validate-mutate-clear sequence runs in one transaction: either a
// fully-formed order with correct stock decrements becomes visible, or
// nothing changes. Stock is decremented through a conditional update, so a
// concurrent checkout that wins the race surfaces here as insufficient stock
// and rolls everything back.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout", "user_id", userID)

	var orderID uint
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		items, err := tx.GetCartItems(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		var lines []models.OrderItem
		for _, item := range items {
			product, err := tx.GetProduct(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Vanished products drop out of the order.
					l.Warn("cart references missing product", "product_id", item.ProductID)
					continue
				}
				return err
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for product %s", ErrInsufficientStock, product.Name)
			}

			total += product.Price * float64(item.Quantity)
			lines = append(lines, models.OrderItem{
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
		}

		order := &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      OrderStatusPaid,
			CreatedAt:   time.Now().Unix(),
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
			ok, err := tx.DecrementStock(ctx, lines[i].ProductID, lines[i].Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w for product id %d", ErrInsufficientStock, lines[i].ProductID)
			}
		}
		if err := tx.CreateOrderItems(ctx, lines); err != nil {
			return err
		}

		if err := tx.ClearCart(ctx, userID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Producer, "order_events", fmt.Sprint(orderID), map[string]any{
		"type":    "order_created",
		"orderID": orderID,
		"userID":  userID,
	})

	l.Info("checkout_success", "order_id", orderID)
	return orderID, nil
}

// History returns the user's orders newest first, summaries only.
func (s *OrderService) History(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}

// Details returns the order with its surviving line items. An order that
// belongs to another user reads as not found.
func (s *OrderService) Details(ctx context.Context, userID, orderID uint) (*transport.OrderDetails, error) {
	order, err := s.Repo.GetOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	items, err := s.Repo.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	details := &transport.OrderDetails{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		Items:       make([]transport.OrderLine, 0, len(items)),
	}
	for _, item := range items {
		product, err := s.Repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logging.FromContext(ctx).Warn("order references missing product",
					"order_id", order.ID, "product_id", item.ProductID)
				continue
			}
			return nil, err
		}
		details.Items = append(details.Items, transport.OrderLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     item.PriceAtPurchase,
			Subtotal:  item.PriceAtPurchase * float64(item.Quantity),
			ImageURL:  product.ImageURL,
		})
	}
	return details, nil
}
