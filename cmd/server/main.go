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
	"go.uber.org/zap"

	"github.com/hobbist2102/rsvp-app/internal/di"
	"github.com/hobbist2102/rsvp-app/internal/handler"
	"github.com/hobbist2102/rsvp-app/internal/messaging"
	"github.com/hobbist2102/rsvp-app/internal/session"
	"github.com/hobbist2102/rsvp-app/pkg/config"
	"github.com/hobbist2102/rsvp-app/pkg/database"
	"github.com/hobbist2102/rsvp-app/pkg/logger"
	"github.com/hobbist2102/rsvp-app/pkg/middleware"
	"github.com/hobbist2102/rsvp-app/pkg/redis"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("validate config: " + err.Error())
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: !cfg.IsProduction(),
	}); err != nil {
		panic("init logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	})
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer db.Close()

	cache, err := redis.NewClient(ctx, &redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal("connect redis", zap.Error(err))
	}
	defer func() { _ = cache.Close() }()

	publisher, err := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.ClientID, cfg.Kafka.MessageTopic)
	if err != nil {
		logger.Fatal("connect kafka", zap.Error(err))
	}
	defer func() { _ = publisher.Close() }()

	container := di.NewContainer(&di.ContainerConfig{
		DB:        db,
		Cache:     cache,
		Sessions:  session.NewRedisStore(cache, cfg.Session.KeyPrefix, cfg.Session.TTL),
		Publisher: publisher,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger.Get()))
	router.Use(middleware.CORS())

	// The token's role claim is advisory; the database carries the current
	// role so a demoted or deleted user loses access before token expiry.
	jwtCfg := &middleware.JWTConfig{
		Secret: cfg.JWT.Secret,
		LookupRole: func(ctx context.Context, userID int64) (string, error) {
			user, err := container.UserRepo.GetByID(ctx, userID)
			if err != nil {
				return "", err
			}
			if user == nil {
				return "", nil
			}
			return string(user.Role), nil
		},
	}

	handler.RegisterRoutes(router, &handler.Handlers{
		Health:        container.HealthHandler,
		Event:         container.EventHandler,
		Guest:         container.GuestHandler,
		Ceremony:      container.CeremonyHandler,
		Accommodation: container.AccommodationHandler,
		Meal:          container.MealHandler,
		Travel:        container.TravelHandler,
		Message:       container.MessageHandler,
	}, jwtCfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
		os.Exit(1)
	}
}
