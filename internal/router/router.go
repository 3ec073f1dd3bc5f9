package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mitchstreats/treats-backend/config"
	"github.com/mitchstreats/treats-backend/internal/app/controller"
	"github.com/mitchstreats/treats-backend/internal/middleware"
)

type Router struct {
	orderController   *controller.OrderController
	catalogController *controller.CatalogController
	config            *config.Config
}

func NewRouter(
	orderController *controller.OrderController,
	catalogController *controller.CatalogController,
	cfg *config.Config,
) *Router {
	return &Router{
		orderController:   orderController,
		catalogController: catalogController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	// Storefront pages and assets.
	staticDir := r.config.Server.StaticDir
	router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	router.StaticFile("/order", filepath.Join(staticDir, "order.html"))
	router.Static("/images", filepath.Join(staticDir, "images"))
	router.Static("/scripts", filepath.Join(staticDir, "scripts"))
	router.Static("/styles", filepath.Join(staticDir, "styles"))

	api := router.Group("/api")
	{
		api.POST("/submit-order", r.orderController.SubmitOrder)
		api.GET("/products", r.catalogController.ListProducts)
		api.GET("/products/:id", r.catalogController.GetProduct)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
