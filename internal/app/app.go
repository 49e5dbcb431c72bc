package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realestate_backend/internal/config"
	"realestate_backend/internal/database"
	"realestate_backend/internal/handlers"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/middleware"
	"realestate_backend/internal/repositories"
	"realestate_backend/internal/routes"
	"realestate_backend/internal/services"
	"realestate_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// Run is the composition root: config, logger, store, services, handlers,
// router, then the HTTP server with graceful shutdown.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	logger.Info("Connecting to MongoDB...", "uri", cfg.Mongo.URI, "database", cfg.Mongo.Database)
	db, err := database.Connect(connectCtx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}
	logger.Info("MongoDB connected")

	if err := db.EnsureIndexes(connectCtx); err != nil {
		logger.Fatal("Failed to ensure indexes", "error", err)
	}
	logger.Info("Indexes ensured")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Warn("Received OS signal, shutting down...", "signal", sig.String())

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during server shutdown", "error", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		logger.Error("Error closing MongoDB client", "error", err)
	}
	logger.Info("Application shut down gracefully")
}

// SetupRouter wires repositories, services and handlers into a gin
// engine. Split out so tests can mount the full stack over a test store.
func SetupRouter(cfg *config.Config, db *database.Mongo) *gin.Engine {
	propertyRepo := repositories.NewPropertyRepository(db)
	propertyService := services.NewPropertyService(propertyRepo)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		PropertyHandler: handlers.NewPropertyHandler(baseHandler, propertyService),
		HealthHandler:   handlers.NewHealthHandler(db),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
