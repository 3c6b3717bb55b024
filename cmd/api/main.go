package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireloop/scheduler-api/internal/config"
	"github.com/hireloop/scheduler-api/internal/handler"
	authhandler "github.com/hireloop/scheduler-api/internal/handler/auth"
	"github.com/hireloop/scheduler-api/internal/handler/availability"
	"github.com/hireloop/scheduler-api/internal/handler/booking"
	"github.com/hireloop/scheduler-api/internal/handler/feedback"
	"github.com/hireloop/scheduler-api/internal/handler/panel"
	"github.com/hireloop/scheduler-api/internal/middleware"
	"github.com/hireloop/scheduler-api/internal/repository/postgres"
	"github.com/hireloop/scheduler-api/internal/router"
	authservice "github.com/hireloop/scheduler-api/internal/service/auth"
	"github.com/hireloop/scheduler-api/internal/service/scheduling"
	"github.com/hireloop/scheduler-api/pkg/auth"
	"github.com/hireloop/scheduler-api/pkg/logger"
	"github.com/hireloop/scheduler-api/pkg/security"
)

func main() {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Setup(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: os.Stdout,
	})

	handler.RegisterValidators()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	userRepo := postgres.NewUserRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())

	if err := postgres.SeedAdmin(ctx, userRepo, hasher, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	authSvc := authservice.NewService(userRepo, hasher, jwtService)
	schedulingSvc := scheduling.NewService(userRepo, availabilityRepo, bookingRepo, feedbackRepo)

	authMw := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		cfg,
		authMw,
		authhandler.NewHandler(authSvc),
		panel.NewHandler(schedulingSvc),
		availability.NewHandler(schedulingSvc),
		booking.NewHandler(schedulingSvc),
		feedback.NewHandler(schedulingSvc),
		handler.NewHealthHandler(db),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
