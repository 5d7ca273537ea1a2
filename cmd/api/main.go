package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medqueue/hospital-api/internal/config"
	"github.com/medqueue/hospital-api/internal/email"
	"github.com/medqueue/hospital-api/internal/handler"
	appointmentHandler "github.com/medqueue/hospital-api/internal/handler/appointment"
	authHandler "github.com/medqueue/hospital-api/internal/handler/auth"
	directoryHandler "github.com/medqueue/hospital-api/internal/handler/directory"
	healthdataHandler "github.com/medqueue/hospital-api/internal/handler/healthdata"
	"github.com/medqueue/hospital-api/internal/middleware"
	"github.com/medqueue/hospital-api/internal/repository/postgres"
	"github.com/medqueue/hospital-api/internal/router"
	appointmentService "github.com/medqueue/hospital-api/internal/service/appointment"
	"github.com/medqueue/hospital-api/internal/service/captcha"
	directoryService "github.com/medqueue/hospital-api/internal/service/directory"
	healthService "github.com/medqueue/hospital-api/internal/service/health"
	userService "github.com/medqueue/hospital-api/internal/service/user"
	"github.com/medqueue/hospital-api/pkg/auth"
	"github.com/medqueue/hospital-api/pkg/logger"
	"github.com/medqueue/hospital-api/pkg/metrics"
	"github.com/medqueue/hospital-api/pkg/security"
)

const bcryptCost = 12

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      zerolog.GlobalLevel(),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Logging.Pretty,
	})

	// Database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Metrics and repositories
	m := metrics.NewMetrics("hospital_api")
	base := postgres.NewBaseRepository(db, m)
	userRepo := postgres.NewUserRepository(base)
	healthRepo := postgres.NewHealthRepository(base)
	historyRepo := postgres.NewHealthHistoryRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)

	// Captcha store: Redis when configured, in-process otherwise.
	var captchaStore captcha.Store
	if cfg.Redis.URL != "" {
		captchaStore, err = captcha.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	} else {
		captchaStore = captcha.NewMemoryStore()
		log.Info().Msg("no redis url configured, using in-memory captcha store")
	}
	captchaSvc := captcha.NewService(
		captchaStore,
		cfg.Captcha.Length,
		time.Duration(cfg.Captcha.TTLMinutes)*time.Minute,
		m,
	)

	// Services
	hasher := security.NewBcryptHasher(bcryptCost)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	userSvc := userService.NewService(userRepo, hasher, jwtSvc, captchaSvc)

	var emailSvc email.Service
	if cfg.SMTP.Enabled {
		emailSvc = email.NewSMTPService(cfg.SMTP)
	}

	dirSvc := directoryService.NewService()
	healthSvc := healthService.NewService(healthRepo, historyRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, userRepo, dirSvc, emailSvc, appLogger, m)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(userSvc, captchaSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	healthdataH := healthdataHandler.NewHandler(healthSvc)
	directoryH := directoryHandler.NewHandler(dirSvc)

	// Router
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	r := router.NewRouter(
		authMiddleware,
		authH,
		appointmentH,
		healthdataH,
		directoryH,
		h,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "hospital_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
