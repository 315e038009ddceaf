package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/config"
	api "github.com/finwatch/payments-analytics-service/internal/delivery/http"
	"github.com/finwatch/payments-analytics-service/internal/delivery/http/handlers"
	publisher "github.com/finwatch/payments-analytics-service/internal/infrastructure/kafka"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/migrate"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/repository"
	rediscache "github.com/finwatch/payments-analytics-service/internal/infrastructure/redis"
	"github.com/finwatch/payments-analytics-service/internal/logger"
	"github.com/finwatch/payments-analytics-service/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)

	// Apply the analytical views on top of the entity tables
	if err := migrate.RunMigrations(db, cfg.AnalyticsDB.MigrationsPath); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	etlMetrics := metrics.NewETLMetrics()

	// Init kafka publisher
	var pub usecase.SuspiciousPaymentPublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		pub = publisher.NewDefaultKafkaPublisher(brokers)
	} else {
		zapLogger.Warn("kafka host not configured, suspicious payment events disabled")
	}

	// Init redis cache
	var cache usecase.ReportCache
	var cachePinger handlers.Pinger
	if cfg.RedisCache.Host != "" {
		client := rediscache.NewClient(&cfg.RedisCache)
		reportCache := rediscache.NewReportCache(client, time.Duration(cfg.RedisCache.TTLSec)*time.Second)
		cache = reportCache
		cachePinger = reportCache
	} else {
		zapLogger.Warn("redis host not configured, analytics caching disabled")
	}

	// Init sink and repositories
	sink := postgres.NewDatasetSink(db)
	reportRepo := repository.NewDefaultReportRepository(db)
	analyticsRepo := repository.NewDefaultAnalyticsRepository(db)

	// Init usecases
	etlUsecase := usecase.NewDefaultETLUsecase(sink, pub, cfg.KafkaService.Topic, cache, etlMetrics, zapLogger)
	reportUsecase := usecase.NewDefaultReportUsecase(reportRepo, etlMetrics)
	analyticsUsecase := usecase.NewDefaultAnalyticsUsecase(analyticsRepo, cache, etlMetrics, zapLogger)

	router := api.NewRouter(api.Deps{
		ETL: handlers.NewETLHandler(
			etlUsecase,
			migrate.NewMigrator(db, cfg.AnalyticsDB.MigrationsPath),
			cfg.Generator,
			zapLogger,
		),
		Reports:   handlers.NewReportHandler(reportUsecase, zapLogger),
		Analytics: handlers.NewAnalyticsHandler(analyticsUsecase, zapLogger),
		Health:    handlers.NewHealthHandler(postgres.NewHealthChecker(db), cachePinger, zapLogger),
		Logger:    zapLogger,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("analytics service listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
