package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/optiregistry/framestock-service/config"
	"github.com/optiregistry/framestock-service/internal/pkg/cache"
	"github.com/optiregistry/framestock-service/internal/pkg/database"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"

	frameH "github.com/optiregistry/framestock-service/internal/frame/handler"
	frameRepoPkg "github.com/optiregistry/framestock-service/internal/frame/repository"
	frameUCPkg "github.com/optiregistry/framestock-service/internal/frame/usecase"

	ledgerH "github.com/optiregistry/framestock-service/internal/ledger/handler"
	ledgerUCPkg "github.com/optiregistry/framestock-service/internal/ledger/usecase"

	listingH "github.com/optiregistry/framestock-service/internal/listing/handler"
	listingUCPkg "github.com/optiregistry/framestock-service/internal/listing/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Repository
	frameRepo := frameRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	frameUC := frameUCPkg.NewFrameUseCase(frameRepo, redisClient, appLogger)
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(frameRepo, redisClient, appLogger)
	listingUC := listingUCPkg.NewListingUseCase(frameRepo, redisClient, appLogger)

	// 7. Initialize Handlers
	frameHandler := frameH.NewFrameHandler(frameUC, appLogger)
	ledgerHandler := ledgerH.NewLedgerHandler(ledgerUC, appLogger)
	listingHandler := listingH.NewListingHandler(listingUC, appLogger)

	// 8. Start HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               "framestock-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	frameHandler.RegisterRoutes(api)
	ledgerHandler.RegisterRoutes(api)
	listingHandler.RegisterRoutes(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))
	go func() {
		if err := app.Listen(port); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
