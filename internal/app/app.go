package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"loveacts-service/internal/config"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/handler"
	"loveacts-service/internal/infrastructure/cron"
	"loveacts-service/internal/infrastructure/kafka"
	infraredis "loveacts-service/internal/infrastructure/redis"
	"loveacts-service/internal/middleware"
	svc "loveacts-service/internal/service"
	"loveacts-service/pkg/hash"
	"loveacts-service/pkg/jwt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// App represents the HTTP API process
type App struct {
	cfg         *config.Config
	log         logrus.FieldLogger
	server      *http.Server
	repos       *repositories
	redis       *goredis.Client
	publisher   service.EventPublisher
	sweeper     *cron.AchievementSweeper
	rateLimiter *middleware.RateLimiter
}

// New wires every component of the API from cfg
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	repos, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	a.repos = repos

	var sessions repository.SessionStore
	if cfg.Redis.Enabled {
		client, err := infraredis.NewSessionRedisClient(ctx, &cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.redis = client
		sessions = infraredis.NewSessionStorage(client)
		log.Info("connected to Redis")
	} else {
		log.Warn("redis disabled, tokens cannot be revoked before expiry")
	}

	if cfg.Kafka.Enabled {
		a.publisher = kafka.NewProducer(&cfg.Kafka, log)
		log.WithField("topic", cfg.Kafka.Topic).Info("kafka producer initialized")
	} else {
		a.publisher = kafka.NopPublisher{}
	}

	tokenManager := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer)

	achievementService := svc.NewAchievementService(repos.users, repos.achievements, repos.activities, a.publisher, log)
	authService := svc.NewAuthService(repos.users, sessions, hash.NewHasher(bcrypt.DefaultCost), tokenManager, log)
	coupleService := svc.NewCoupleService(repos.users, repos.couples, repos.moods, achievementService, a.publisher, log)
	activityService := svc.NewActivityService(repos.users, repos.activities, achievementService, a.publisher, log)
	moodService := svc.NewMoodService(repos.users, repos.moods, a.publisher, log)
	dashboardService := svc.NewDashboardService(repos.activities, repos.achievements)

	if cfg.Scheduler.Enabled {
		a.sweeper = cron.NewAchievementSweeper(achievementService, repos.users, repos.activities, cfg.Scheduler.CheckInterval, log)
	}

	opts := handler.RouterOptions{
		Version: cfg.Service.Version,
		CORS:    middleware.NewCORS(cfg.HTTP.AllowedOrigins),
		Log:     log,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	if cfg.RateLimit.Enabled {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		opts.RateLimiter = a.rateLimiter
	}

	router := handler.NewRouter(
		handler.NewAuthHandler(authService, log),
		handler.NewCoupleHandler(coupleService, log),
		handler.NewActivityHandler(activityService, log),
		handler.NewMoodHandler(moodService, log),
		handler.NewAchievementHandler(achievementService, dashboardService, log),
		middleware.NewAuthMiddleware(authService),
		opts,
	)

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return a, nil
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.sweeper != nil {
		if err := a.sweeper.Start(); err != nil {
			return err
		}
		defer a.sweeper.Stop()
	}

	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.rateLimiter != nil && a.cfg.RateLimit.CleanupInterval > 0 {
		go a.rateLimiter.RunCleanup(bgCtx, a.cfg.RateLimit.CleanupInterval)
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.server.Addr).Info("HTTP server started")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	a.log.Info("server shutdown complete")
	return nil
}

// Close releases storage, Redis and Kafka handles
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.WithError(err).Warn("error closing event publisher")
		}
		a.publisher = nil
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.WithError(err).Warn("error closing Redis client")
		}
		a.redis = nil
	}
	if a.repos != nil {
		a.repos.close()
		a.repos = nil
	}
}
