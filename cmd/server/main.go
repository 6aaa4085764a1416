package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeynil/CampusMarket/internal/api"
	"github.com/honeynil/CampusMarket/internal/config"
	"github.com/honeynil/CampusMarket/internal/handler"
	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/infrastructure/kafka"
	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/observability"
	"github.com/honeynil/CampusMarket/internal/repository/postgres"
	service "github.com/honeynil/CampusMarket/internal/services"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, metricsHandler := observability.Setup(ctx, cfg)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("failed to shut down tracing", "error", err)
		}
	}()

	db, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := redis.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	uow := postgres.NewUnitOfWork(db)
	events := service.NewEventPublisher(producer, cfg.KafkaTopic)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, uow)
	defer consumer.Close()
	go consumer.Consume(ctx)

	h := handler.NewHandler(handler.Services{
		Accounts: service.NewAccountService(uow, redisClient, issuer, events),
		Catalog:  service.NewCatalogService(uow, redisClient, events),
		Orders:   service.NewOrderService(uow, redisClient, events),
		Bounties: service.NewBountyService(uow, events),
		Messages: service.NewMessageService(uow, redisClient, events),
		Carts:    service.NewCartService(uow),
		Reviews:  service.NewReviewService(uow, events),
		Admin:    service.NewAdminService(uow, redisClient, events),
	})

	router := api.SetupRouter(api.Deps{
		Handler:     h,
		RedisClient: redisClient,
		Issuer:      issuer,
		Metrics:     metricsHandler,
		Checks: map[string]api.HealthCheck{
			"postgres": db.PingContext,
			"redis":    redisClient.Ping,
		},
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
