package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cleaning-marketplace-server/config"
	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/jobs"
	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/routes"
	"cleaning-marketplace-server/services"
	"cleaning-marketplace-server/utils"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)
	if envErr != nil {
		utils.Logger.Info("No .env file found, using system environment variables")
	}

	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := database.Open(cfg.Store)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize store")
	}

	// Refuse to start on an unreadable store rather than serving an empty one
	if _, err := store.Load(context.Background()); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load store")
	}

	gateway := database.NewGateway(store)
	sessions := services.NewMemorySessionStore()
	auth := services.NewAuthService(gateway, sessions)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	if limiter.Enabled() {
		cleanupJob := jobs.NewLimiterCleanupJob(limiter, 5*time.Minute, 10*time.Minute)
		cleanupJob.Start()
		defer cleanupJob.Stop()
	}

	router := routes.SetupRouter(&routes.Handlers{
		Auth:     auth,
		Bookings: services.NewBookingService(gateway),
		Messages: services.NewMessageService(gateway),
		Ratings:  services.NewRatingService(gateway),
	}, limiter)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Logger.WithField("port", cfg.Server.Port).Info("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	utils.Logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("Server forced to shutdown")
	}
}
