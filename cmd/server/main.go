package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"horoscope-service/internal/adapters/primary/http/handlers"
	"horoscope-service/internal/adapters/primary/http/middleware"
	"horoscope-service/internal/adapters/secondary/logging"
	"horoscope-service/internal/config"
	"horoscope-service/internal/core/services"
	"horoscope-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	appLogger, logFile, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logFile.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(cfg, appLogger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Infof("Server is running on port %d", cfg.Server.Port)
	if err := serve(ctx, srv, appLogger, cfg.Server.ShutdownTimeout); err != nil {
		appLogger.WithError(err).Error("server stopped with error")
		return err
	}

	appLogger.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, appLogger *log.Logger) *gin.Engine {
	// Secondary Adapters
	outcomeLogger := logging.NewOutcomeLogger(appLogger)

	// Core Services
	horoscopeSvc := services.NewHoroscopeService(outcomeLogger)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(horoscopeSvc, handlers.NewOpenAPIDocument(cfg.Docs.ServerURL))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(appLogger), middleware.Recovery(appLogger))

	h.RegisterRoutes(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// serve runs srv until it fails or ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, appLogger *log.Logger, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}
	appLogger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	return nil
}
