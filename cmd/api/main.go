package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/events"
	apphttp "github.com/creator-marketplace/backend/internal/http"
	"github.com/creator-marketplace/backend/internal/http/handlers"
	"github.com/creator-marketplace/backend/internal/importer"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	creatorRepo := repositories.NewCreatorRepo(pool)
	brandRepo := repositories.NewBrandRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	applicationRepo := repositories.NewApplicationRepo(pool)
	shortlistRepo := repositories.NewShortlistRepo(pool)
	dealRepo := repositories.NewDealRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	ideaRepo := repositories.NewIdeaRepo(pool)
	eventRepo := repositories.NewEventRepo(pool)
	analyticsRepo := repositories.NewAnalyticsRepo(pool)
	mediaKitRepo := repositories.NewMediaKitRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	authService := services.NewAuthService(userRepo, creatorRepo, brandRepo, auditRepo, cfg, log)
	userService := services.NewUserService(userRepo, auditRepo, log)
	creatorService := services.NewCreatorService(creatorRepo, auditRepo, log)
	brandService := services.NewBrandService(brandRepo, applicationRepo, auditRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, brandRepo, creatorRepo, auditRepo, log)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, creatorRepo, brandRepo, eventRepo, auditRepo, publisher, log)
	shortlistService := services.NewShortlistService(shortlistRepo, brandRepo, creatorRepo, log)
	toolkitService := services.NewToolkitService(creatorRepo, dealRepo, invoiceRepo, ideaRepo, eventRepo, analyticsRepo, mediaKitRepo, log)

	imp := importer.New(userRepo, creatorRepo, cfg.BcryptCost, log)

	// Handlers
	wsHub := handlers.NewWSHub(cfg, subscriber, log)
	wsHub.Start(ctx)

	deps := apphttp.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		Redis:      rdb,
		Auth:       handlers.NewAuthHandler(authService, log),
		Users:      handlers.NewUserHandler(userService, log),
		Creators:   handlers.NewCreatorHandler(creatorService, imp, log),
		Brands:     handlers.NewBrandHandler(brandService, log),
		Campaigns:  handlers.NewCampaignHandler(campaignService, log),
		Apps:       handlers.NewApplicationHandler(applicationService, log),
		Shortlists: handlers.NewShortlistHandler(shortlistService, log),
		Toolkit:    handlers.NewToolkitHandler(toolkitService, log),
		Meta:       handlers.NewMetaHandler(),
		WSHub:      wsHub,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, deps)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
