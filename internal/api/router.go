package api

import (
	"time"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full route tree. Identity resolution and rate limiting
// run on everything; admin routes add the role guard on top.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.Logging())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Guest-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Identify())
	r.Use(middleware.RateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	r.GET("/products", h.listProducts)
	r.GET("/products/:id", h.getProduct)
	r.GET("/products/:id/reviews", h.listReviews)
	r.POST("/products/:id/reviews", h.createReview)

	r.GET("/shipping/quote", h.shippingQuote)
	r.GET("/payment/methods", h.paymentMethods)

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", h.getCart)
		cartGroup.POST("/items", h.addCartItem)
		cartGroup.PUT("/items/:id", h.updateCartItem)
		cartGroup.DELETE("/items/:id", h.removeCartItem)
		cartGroup.DELETE("", h.clearCart)
	}

	co := r.Group("/checkout")
	{
		co.POST("", h.startCheckout)
		co.GET("/:id", h.getCheckout)
		co.PUT("/:id/shipping", h.setCheckoutShipping)
		co.PUT("/:id/payment", h.setCheckoutPayment)
		co.POST("/:id/submit", h.submitCheckout)
		co.POST("/:id/transaction", h.submitCheckoutTransaction)
	}

	r.POST("/orders/track", h.trackOrder)
	r.POST("/orders/transaction", h.attachTransaction)
	r.GET("/orders/mine", middleware.RequireAuth(), h.myOrders)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/orders", h.adminListOrders)
		admin.GET("/orders/:id", h.adminGetOrder)
		admin.PUT("/orders/:id/status", h.adminUpdateOrderStatus)
		admin.PUT("/orders/:id/payment-status", h.adminUpdatePaymentStatus)
		admin.PUT("/orders/:id/tracking", h.adminAssignTracking)
		admin.PUT("/orders/:id/notes", h.adminUpdateDeliveryNotes)
		admin.DELETE("/orders/:id", h.adminDeleteOrder)

		admin.GET("/products", h.adminListProducts)
		admin.POST("/products", h.createProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.DELETE("/reviews/:id", h.adminDeleteReview)

		admin.GET("/admins", h.listAdmins)
		admin.POST("/admins", h.createAdmin)
		admin.PUT("/users/:id/active", h.setUserActive)

		admin.GET("/ws/orders", h.Hub.Handler)
	}

	return r
}
