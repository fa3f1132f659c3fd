package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	authmw "github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	orderID, err := h.Svc.Checkout(ctx, user.ID)
	if err != nil {
		return fail(l, "checkout_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Checkout successful",
		"order_id": orderID,
	})
}

func (h *OrderHTTP) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_history")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	orders, err := h.Svc.History(ctx, user.ID)
	if err != nil {
		return fail(l, "get_history_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetDetails(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_details")

	user, err := authmw.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_details_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	details, err := h.Svc.Details(ctx, user.ID, orderID)
	if err != nil {
		return fail(l, "get_details_error", err)
	}

	return c.JSON(http.StatusOK, details)
}
