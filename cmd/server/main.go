package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iot-lambda-functions/internal/handlers"
	"iot-lambda-functions/internal/middleware"
	"iot-lambda-functions/pkg/server"

	"github.com/gin-gonic/gin"
)

// Local invoke harness. Serves every function behind the Lambda Invoke API
// path so they can be exercised without deploying.
func main() {
	container, err := server.Bootstrap(context.Background(), server.BootstrapOptions{
		WithBackingStore: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize harness: %v", err)
	}

	cfg := container.Config
	logger := container.Logger

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RateLimiter(logger, cfg.Server.RateLimit, cfg.Server.RateBurst))
	router.Use(middleware.RequestSizeLimit(cfg.Server.MaxBodyBytes))

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Functions: container.Functions(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	logger.WithField("port", cfg.Port).Info("Invoke harness started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down harness...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Harness forced to shutdown: %v", err)
	}

	logger.Info("Harness exited")
}
