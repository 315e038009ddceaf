// One-shot ETL runner: generates a deterministic dataset and loads it into
// the analytics database, then prints the run report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/config"
	publisher "github.com/finwatch/payments-analytics-service/internal/infrastructure/kafka"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/migrate"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres"
	rediscache "github.com/finwatch/payments-analytics-service/internal/infrastructure/redis"
	"github.com/finwatch/payments-analytics-service/internal/logger"
	"github.com/finwatch/payments-analytics-service/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Int64("seed", 0, "override configured generation seed")
	customers := flag.Int("customers", 0, "override configured customer count")
	merchants := flag.Int("merchants", 0, "override configured merchant count")
	payments := flag.Int("payments", 0, "override configured payment count")
	windowDays := flag.Int("window-days", 0, "override configured history window in days")
	workers := flag.Int("workers", 0, "override configured generation worker count")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()

	zapLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.AnalyticsDB.MigrationsPath); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	var pub usecase.SuspiciousPaymentPublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		pub = publisher.NewDefaultKafkaPublisher(brokers)
	}

	var cache usecase.ReportCache
	if cfg.RedisCache.Host != "" {
		client := rediscache.NewClient(&cfg.RedisCache)
		cache = rediscache.NewReportCache(client, time.Duration(cfg.RedisCache.TTLSec)*time.Second)
	}

	etlUsecase := usecase.NewDefaultETLUsecase(
		postgres.NewDatasetSink(db),
		pub,
		cfg.KafkaService.Topic,
		cache,
		metrics.NewETLMetrics(),
		zapLogger,
	)

	params := usecase.GeneratorParams(cfg.Generator)
	if *seed != 0 {
		params.Seed = *seed
	}
	if *customers != 0 {
		params.Customers = *customers
	}
	if *merchants != 0 {
		params.Merchants = *merchants
	}
	if *payments != 0 {
		params.Payments = *payments
	}
	if *windowDays != 0 {
		params.WindowDays = *windowDays
	}
	if *workers != 0 {
		params.Workers = *workers
	}

	report, err := etlUsecase.Run(context.Background(), params)
	if err != nil {
		zapLogger.Fatal("etl run failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		zapLogger.Fatal("failed to encode run report", zap.Error(err))
	}
}
