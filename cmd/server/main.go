package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"healthvault-api/internal/api/handlers"
	"healthvault-api/internal/api/middleware"
	"healthvault-api/internal/config"
	"healthvault-api/internal/database"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/domain/repositories"
	"healthvault-api/internal/services"
	"healthvault-api/internal/storage"
)

func main() {
	logger := config.InitLogger()
	cfg := config.Load()

	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db, &entities.User{}, &entities.Record{}); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewDiskAttachmentStore(cfg.Uploads.Dir, logger)
	if err != nil {
		logger.Error("failed to prepare attachment store", "error", err)
		os.Exit(1)
	}

	// Dependencies are constructed once here and injected; nothing holds
	// process-wide singleton state.
	recordRepo := repositories.NewGormRecordRepository(db)
	userRepo := repositories.NewGormUserRepository(db)

	recordService := services.NewRecordService(recordRepo, store, logger)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	userService := services.NewUserService(userRepo, recordService, store, logger)

	authMW := middleware.NewAuthMiddleware(authService)

	app := fiber.New(fiber.Config{
		AppName:   "healthvault-api",
		BodyLimit: 25 * 1024 * 1024,
	})

	handlers.RegisterAuthRoutes(app, handlers.NewAuthHandler(authService, logger))
	handlers.RegisterRecordRoutes(app, handlers.NewRecordHandler(recordService, logger), authMW)
	handlers.RegisterUserRoutes(app, handlers.NewUserHandler(userService, logger), authMW)
	app.Static(storage.PublicPrefix, cfg.Uploads.Dir)

	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server exited")
}
