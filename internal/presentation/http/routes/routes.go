package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/marketplace-api/internal/config"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/internal/presentation/http/handler"
	"github.com/sangkips/marketplace-api/internal/presentation/http/middleware"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	LineItem    *handler.LineItemHandler
	Transaction *handler.TransactionHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Storefront-facing API, same paths the storefront wire format fixes
	api := router.Group("/api")
	{
		if deps.Cfg.InternalAuth.Enabled {
			api.Use(middleware.InternalAuthMiddleware(deps.JWTManager))
		}

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		api.Use(rateLimiter.Middleware())

		api.POST("/transaction-line-items", h.LineItem.Preview)

		// Only the committing initiation gets the replay store.
		initiate := api.Group("")
		if deps.IdempotencyRepo != nil {
			initiate.Use(middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}))
		}
		initiate.POST("/initiate-privileged", h.Transaction.Initiate)
	}

	return router
}
