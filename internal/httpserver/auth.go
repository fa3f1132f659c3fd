package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	authmw "github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc   *service.AuthService
	Reset *service.ResetService
}

func (h *AuthHTTP) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.sign_up")

	var req transport.SignUpRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("sign_up_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.SignUp(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return fail(l, "sign_up_error", err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) SignIn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.sign_in")

	var req transport.SignInRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("sign_in_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "sign_in_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Login successful",
		"session_token": res.Token,
		"role":          res.Role,
	})
}

func (h *AuthHTTP) SignOut(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.sign_out")

	sessionToken, err := authmw.BearerToken(c)
	if err != nil {
		l.Warn("sign_out_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	if err := h.Svc.SignOut(ctx, sessionToken); err != nil {
		return fail(l, "sign_out_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (h *AuthHTTP) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.forgot_password")

	var req transport.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("forgot_password_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Reset.RequestReset(ctx, req.Email); err != nil {
		return fail(l, "forgot_password_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset token sent to your email"})
}

func (h *AuthHTTP) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.reset_password")

	var req transport.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("reset_password_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Reset.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		return fail(l, "reset_password_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}
