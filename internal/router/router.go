package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wempyhq/wempy-ordering/config"
	"github.com/wempyhq/wempy-ordering/internal/app/controller"
	"github.com/wempyhq/wempy-ordering/internal/middleware"
)

type Router struct {
	orderController *controller.OrderController
	config          *config.Config
}

func NewRouter(orderController *controller.OrderController, cfg *config.Config) *Router {
	return &Router{
		orderController: orderController,
		config:          cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Wempy order service ready",
		})
	})

	// Serve the static catalog the menu client fetches
	router.Static("/data", r.config.Server.CatalogDir)

	router.POST("/submit_order", r.orderController.SubmitOrder)
	router.GET("/orders", r.orderController.ListOrders)
	router.GET("/orders/:id/receipt", r.orderController.GetReceipt)

	return router
}

// corsMiddleware mirrors the permissive policy of the original intake
// service: the menu client is served from an arbitrary static host.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
