// Package gateway exposes the Homeli REST API: food catalog, cart, order
// lifecycle and the per-user profile collections.
package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/example/homeli/pkg/cart"
	"github.com/example/homeli/pkg/catalog"
	"github.com/example/homeli/pkg/config"
	"github.com/example/homeli/pkg/orders"
	"github.com/example/homeli/pkg/paysim"
	"github.com/example/homeli/pkg/profile"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentSettler hands upi/card orders to the simulated gateway.
type PaymentSettler interface {
	Settle(msg *paysim.SettlePayment)
}

type Gateway struct {
	config    *config.Config
	logger    *zap.Logger
	router    *gin.Engine
	catalog   catalog.Store
	carts     *cart.Service
	orders    *orders.Service
	profile   *profile.Service
	simulator PaymentSettler
}

func NewGateway(cfg *config.Config, logger *zap.Logger, catalogStore catalog.Store, carts *cart.Service, orderSvc *orders.Service, profileSvc *profile.Service, simulator PaymentSettler) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(logger))

	return &Gateway{
		config:    cfg,
		logger:    logger,
		router:    router,
		catalog:   catalogStore,
		carts:     carts,
		orders:    orderSvc,
		profile:   profileSvc,
		simulator: simulator,
	}
}

func (g *Gateway) SetupRoutes() {
	// Health check
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := g.router.Group("/api")
	{
		food := api.Group("/food-items")
		{
			food.GET("", g.listFoodItems)
			food.POST("/seed", g.seedFoodItems)
		}

		carts := api.Group("/cart")
		{
			carts.POST("/add", g.addToCart)
			carts.PUT("/update", g.updateCartQuantity)
			carts.DELETE("/clear/:userId", g.clearCart)
			carts.GET("/:userId", g.getCart)
			carts.DELETE("/:userId/:foodItemId", g.removeFromCart)
		}

		ord := api.Group("/orders")
		{
			ord.POST("/create", g.createOrder)
			ord.PUT("/payment/:orderId", g.updateOrderPayment)
			ord.PUT("/status/:orderId", g.updateOrderStatus)
			ord.PUT("/cancel/:orderId", g.cancelOrder)
			ord.GET("/phone/:phoneNumber", g.ordersByPhone)
			ord.GET("/user/:userId", g.ordersByUser)
			ord.GET("", g.listOrders)
			ord.GET("/:orderId", g.getOrder)
		}

		prof := api.Group("/profile/:userId")
		{
			prof.GET("/addresses", g.listAddresses)
			prof.POST("/addresses", g.addAddress)
			prof.PUT("/addresses/:id", g.updateAddress)
			prof.PUT("/addresses/:id/default", g.setDefaultAddress)
			prof.DELETE("/addresses/:id", g.deleteAddress)

			prof.GET("/favorites", g.listFavorites)
			prof.POST("/favorites/toggle", g.toggleFavorite)

			prof.GET("/notifications", g.listNotifications)
			prof.POST("/notifications", g.addNotification)
			prof.PUT("/notifications/read-all", g.markAllNotificationsRead)
			prof.PUT("/notifications/:id/read", g.markNotificationRead)
			prof.DELETE("/notifications", g.clearAllNotifications)
			prof.DELETE("/notifications/:id", g.clearNotification)

			prof.GET("/cards", g.listCards)
			prof.POST("/cards", g.addCard)
			prof.PUT("/cards/:id/default", g.setDefaultCard)
			prof.DELETE("/cards/:id", g.deleteCard)

			prof.GET("/upis", g.listUPIs)
			prof.POST("/upis", g.addUPI)
			prof.PUT("/upis/:id/default", g.setDefaultUPI)
			prof.DELETE("/upis/:id", g.deleteUPI)
		}
	}
}

func (g *Gateway) Router() *gin.Engine {
	return g.router
}

func (g *Gateway) Start() error {
	addr := fmt.Sprintf("%s:%d", g.config.Server.Host, g.config.Server.Port)
	g.logger.Info("API server starting", zap.String("address", addr))
	return g.router.Run(addr)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

const requestIDKey = "request_id"

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
