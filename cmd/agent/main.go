package main

import (
	"context"
	"log"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/application/proxy"
	"github.com/softcrates/fieldsync/internal/application/service"
	"github.com/softcrates/fieldsync/internal/application/syncer"
	"github.com/softcrates/fieldsync/internal/config"
	"github.com/softcrates/fieldsync/internal/infrastructure/database"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/internal/infrastructure/repository"
	"github.com/softcrates/fieldsync/internal/presentation/http/handler"
	"github.com/softcrates/fieldsync/internal/presentation/http/routes"
	"github.com/softcrates/fieldsync/pkg/connectivity"
	"github.com/softcrates/fieldsync/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local database
	db, err := database.NewSQLiteDB(&cfg.LocalDB)
	if err != nil {
		log.Fatalf("Failed to open local database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	articleRepo := repository.NewArticleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	deliveryPointRepo := repository.NewDeliveryPointRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize remote access
	tokens := utils.NewTokenStore()
	remoteClient := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout, tokens)
	monitor := connectivity.NewMonitor(probeAddr(cfg.Remote.BaseURL), cfg.Remote.ProbeTimeout)

	// Initialize proxies
	articleProxy := proxy.NewArticleProxy(monitor, remoteClient, articleRepo)
	clientProxy := proxy.NewClientProxy(monitor, remoteClient, clientRepo)
	orderProxy := proxy.NewOrderProxy(monitor, remoteClient, orderRepo)
	deliveryPointProxy := proxy.NewDeliveryPointProxy(monitor, remoteClient, deliveryPointRepo)
	discountProxy := proxy.NewDiscountProxy(monitor, remoteClient, discountRepo)

	// Initialize sync engines
	downSync := syncer.NewDownSyncEngine(remoteClient, articleRepo, clientRepo, invoiceRepo, deliveryPointRepo, discountRepo, orderRepo, userRepo)
	upSync := syncer.NewUpSyncEngine(remoteClient, orderRepo, downSync)
	syncManager := syncer.NewManager(downSync, upSync, monitor)

	// Initialize services
	authService := service.NewAuthService(monitor, remoteClient, userRepo, tokens)
	discountService := service.NewDiscountService(discountRepo)
	orderService := service.NewOrderService(orderRepo, articleRepo, clientRepo, discountService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Article: handler.NewArticleHandler(articleProxy),
		Client:  handler.NewClientHandler(clientProxy, deliveryPointProxy, discountProxy),
		Order:   handler.NewOrderHandler(orderService, orderProxy),
		Sync:    handler.NewSyncHandler(syncManager, downSync, upSync, monitor),
	}

	ctx := context.Background()

	// Initial sync when the server is reachable
	if cfg.Sync.OnStart && monitor.IsConnected() {
		go func() {
			for _, result := range syncManager.RunFull(ctx) {
				log.Printf("[SYNC] startup %s: processed=%d skipped=%d", result.Entity, result.Processed, result.Skipped)
			}
		}()
	}

	// Push pending orders whenever connectivity comes back
	go syncManager.Watch(ctx, cfg.Sync.ProbeInterval)

	// Setup routes and start server
	router := routes.Setup(handlers, cfg)
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// probeAddr derives the host:port the connectivity monitor dials from the
// remote base URL.
func probeAddr(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "localhost:80"
	}
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return u.Host + ":443"
	}
	return u.Host + ":80"
}
