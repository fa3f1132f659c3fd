package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/storefront/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	SearchHandler  *SearchHTTP
	AuthMW         *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/signup", d.AuthHandler.SignUp)
	auth.POST("/signin", d.AuthHandler.SignIn)
	auth.POST("/signout", d.AuthHandler.SignOut)
	auth.POST("/forgot-password", d.AuthHandler.ForgotPassword)
	auth.POST("/reset-password", d.AuthHandler.ResetPassword)

	// Public catalog browsing; anonymous allowed.
	products := e.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	admin := e.Group("/admin/products", d.AuthMW.RequireAdmin)
	admin.POST("", d.CatalogHandler.CreateProduct)
	admin.GET("", d.CatalogHandler.ListAllProducts)
	admin.GET("/:id", d.CatalogHandler.GetProduct)
	admin.PUT("/:id", d.CatalogHandler.UpdateProduct)
	admin.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	cart := e.Group("/cart", d.AuthMW.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:product_id", d.CartHandler.UpdateCartItem)
	cart.DELETE("/:product_id", d.CartHandler.RemoveFromCart)

	orders := e.Group("/orders", d.AuthMW.RequireLogin)
	orders.POST("/checkout", d.OrderHandler.Checkout)
	orders.GET("", d.OrderHandler.GetHistory)
	orders.GET("/:id", d.OrderHandler.GetDetails)

	if d.SearchHandler != nil && d.SearchHandler.Search.Enabled() {
		e.GET("/search", d.SearchHandler.Handler)
	}
}
