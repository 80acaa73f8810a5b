package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/flicky/go-shop-api/internal/middleware"
)

type Handlers struct {
	Health   *HealthHandler
	Session  *SessionHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Checkout *CheckoutHandler
	Order    *OrderHandler
	Stats    *StatsHandler
}

// RegisterRoutes mounts the API on router. Everything except health checks
// and session creation requires a guest session token.
func RegisterRoutes(router *gin.Engine, h Handlers, jwtSecret string) {
	router.GET("/healthz", h.Health.Healthz)
	router.GET("/readyz", h.Health.Readyz)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sessions", h.Session.Create)

		auth := v1.Group("", middleware.AuthMiddleware(jwtSecret))

		products := auth.Group("/products")
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/:id", h.Product.GetByID)
		products.PUT("/:id/rating", h.Product.Rate)

		cart := auth.Group("/cart")
		cart.GET("", h.Cart.GetCart)
		cart.POST("/items", h.Cart.AddItem)
		cart.DELETE("/items/:id", h.Cart.DeleteItem)
		cart.POST("/discount", h.Cart.ApplyDiscount)

		wishlist := auth.Group("/wishlist")
		wishlist.GET("", h.Wishlist.List)
		wishlist.POST("/:productId/toggle", h.Wishlist.Toggle)
		wishlist.POST("/:productId/move", h.Wishlist.MoveToCart)

		checkout := auth.Group("/checkout")
		checkout.POST("", h.Checkout.Begin)
		checkout.POST("/confirm", h.Checkout.Confirm)

		orders := auth.Group("/orders")
		orders.GET("", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)

		auth.GET("/stats/sales", h.Stats.Sales)
	}
}
