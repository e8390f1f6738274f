// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"auberge-espagnole/cmd"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/wire"
	"auberge-espagnole/pkg/cache"
	"auberge-espagnole/pkg/database"
	"auberge-espagnole/pkg/storage"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("delivery_enforce", config.Delivery.Enforce),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories
	var repos *repository.Repository
	switch config.Database.Driver {
	case "memory":
		logger.Warn("Using in-memory storage, data is lost on restart")
		repos = repository.NewMemoryRepository(logger)
	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = database.Migrate(migrateCtx, db, logger)
		cancel()
		if err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}

		repos = repository.NewRepository(db, logger)
	}

	// Optional product cache
	rdb, err := cache.ConnectRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, product cache disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		repos = repos.WithProductCache(rdb, logger)
	}

	images, err := storage.NewLocalStore(config.Upload, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	tokens := utils.NewTokenManager(config.JWT)

	// Wire all dependencies
	app := wire.Wiring(repos, images, tokens, config, logger)

	if config.Admin.Email != "" && config.Admin.Password != "" {
		if err := app.Service.Auth.EnsureAdmin(ctx, config.Admin.Email, config.Admin.Password); err != nil {
			logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
		}
	}

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}
