package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	authmw "github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Add(ctx, user.ID, req.ProductID, req.Quantity); err != nil {
		return fail(l, "add_to_cart_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Item added to cart successfully"})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	lines, err := h.Svc.View(ctx, user.ID)
	if err != nil {
		return fail(l, "get_cart_error", err)
	}

	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	productID, err := parseID(c, "product_id")
	if err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "product_id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product_id is not an integer")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, user.ID, productID, req.Quantity); err != nil {
		return fail(l, "update_cart_item_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Cart item updated successfully"})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_from_cart")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	productID, err := parseID(c, "product_id")
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "product_id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product_id is not an integer")
	}

	if err := h.Svc.Remove(ctx, user.ID, productID); err != nil {
		return fail(l, "remove_from_cart_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Item removed from cart successfully"})
}
