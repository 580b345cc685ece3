package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/config"
	"github.com/softcrates/fieldsync/internal/presentation/http/handler"
	"github.com/softcrates/fieldsync/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Article *handler.ArticleHandler
	Client  *handler.ClientHandler
	Order   *handler.OrderHandler
	Sync    *handler.SyncHandler
}

// Setup creates the Gin router and registers all routes. The API is served
// loopback-only to the UI shell on the same device; there is no token check
// on the local surface.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", h.Article.List)
			articles.GET("/search", h.Article.Search)
			articles.GET("/:code", h.Article.GetByCode)
		}

		clients := v1.Group("/clients")
		{
			clients.GET("/search", h.Client.Search)
			clients.GET("/:id", h.Client.Get)
			clients.GET("/:id/summary", h.Client.Summary)
			clients.GET("/:id/delivery-points", h.Client.DeliveryPoints)
			clients.GET("/:id/articles", h.Client.Catalog)
			clients.GET("/:id/orders", h.Order.History)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", h.Order.Create)
			orders.GET("/:csid", h.Order.Get)
		}

		sync := v1.Group("/sync")
		{
			sync.GET("/status", h.Sync.Status)
			sync.POST("/full", h.Sync.RunFull)
			sync.POST("/down", h.Sync.RunDown)
			sync.POST("/push", h.Sync.Push)
		}
	}

	return router
}
