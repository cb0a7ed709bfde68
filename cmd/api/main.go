package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/config"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/internal/infrastructure/database"
	"github.com/sangkips/marketplace-api/internal/infrastructure/marketplace"
	"github.com/sangkips/marketplace-api/internal/infrastructure/repository"
	"github.com/sangkips/marketplace-api/internal/presentation/http/handler"
	"github.com/sangkips/marketplace-api/internal/presentation/http/routes"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the idempotency replay store. The server still works
	// without it; replays just aren't deduplicated.
	var idempotencyRepo domainRepo.IdempotencyRepository
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Printf("Warning: idempotency store unavailable: %v", err)
	} else {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		idempotencyRepo = repository.NewIdempotencyRepository(db)
	}

	// Initialize JWT manager for internal service auth
	jwtManager := utils.NewJWTManager(cfg.InternalAuth.Secret, cfg.InternalAuth.Issuer)

	// Marketplace backend client: listings, credential exchange, transactions
	marketplaceClient := marketplace.NewClient(&cfg.Marketplace)

	// Initialize services
	pricingService := service.NewPricingService(&cfg.Commission)
	lineItemService := service.NewLineItemService(marketplaceClient, pricingService)
	transactionService := service.NewTransactionService(
		marketplaceClient,
		marketplaceClient,
		marketplaceClient,
		pricingService,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		LineItem:    handler.NewLineItemHandler(lineItemService),
		Transaction: handler.NewTransactionHandler(transactionService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "3500"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
