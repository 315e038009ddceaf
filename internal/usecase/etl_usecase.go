package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/config"
	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/generator"
	publisher "github.com/finwatch/payments-analytics-service/internal/infrastructure/kafka"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
	etldto "github.com/finwatch/payments-analytics-service/internal/usecase/dto/etl"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

// SuspiciousPaymentPublisher pushes flagged payments downstream after a load.
type SuspiciousPaymentPublisher interface {
	BatchPublishWithRetry(topic string, events []publisher.SuspiciousPaymentEvent, batchSize, maxRetries int) error
}

// ReportCache is the slice of the cache the usecases need.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	InvalidateAnalytics(ctx context.Context) error
}

type DefaultETLUsecase struct {
	sink    domain.DatasetSink
	pub     SuspiciousPaymentPublisher
	topic   string
	cache   ReportCache
	metrics *metrics.ETLMetrics
	logger  *zap.Logger
}

// NewDefaultETLUsecase wires the pipeline. pub and cache may be nil when no
// broker or cache is configured.
func NewDefaultETLUsecase(
	sink domain.DatasetSink,
	pub SuspiciousPaymentPublisher,
	topic string,
	cache ReportCache,
	etlMetrics *metrics.ETLMetrics,
	logger *zap.Logger,
) *DefaultETLUsecase {
	return &DefaultETLUsecase{
		sink:    sink,
		pub:     pub,
		topic:   topic,
		cache:   cache,
		metrics: etlMetrics,
		logger:  logger,
	}
}

// GeneratorParams translates config into generator parameters, anchoring the
// historical window at the current time.
func GeneratorParams(cfg config.GeneratorConfig) generator.Params {
	return generator.Params{
		Seed:                cfg.Seed,
		Customers:           cfg.Customers,
		Merchants:           cfg.Merchants,
		Payments:            cfg.Payments,
		WindowDays:          cfg.WindowDays,
		Now:                 time.Now().UTC(),
		SettlementCycleDays: cfg.SettlementCycleDays,
		SLADays:             cfg.SLADays,
		BreachProbability:   cfg.BreachProbability,
		OutlierFraction:     cfg.OutlierFraction,
		RiskScoreThreshold:  cfg.RiskScoreThreshold,
		HighValueThreshold:  cfg.HighValueThreshold,
		Workers:             cfg.Workers,
	}
}

// Run executes one full generate-and-load pass. Generation is pure and
// all-or-nothing; loading follows the dependency order customers/merchants,
// payments, settlements. The first load failure aborts the run — the sink's
// idempotent inserts make a later retry safe.
func (uc *DefaultETLUsecase) Run(ctx context.Context, params generator.Params) (*etldto.RunReport, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	report := &etldto.RunReport{
		RunID:     idGenerator(),
		StartedAt: time.Now().UTC(),
	}

	genStart := time.Now()
	dataset, err := generator.Generate(params)
	if err != nil {
		uc.metrics.RecordRun("generation_failed")
		return nil, err
	}
	uc.metrics.RecordStageDuration("generate", time.Since(genStart).Seconds())

	uc.logger.Info("dataset generated",
		zap.String("run_id", report.RunID),
		zap.Int("customers", len(dataset.Customers)),
		zap.Int("merchants", len(dataset.Merchants)),
		zap.Int("payments", len(dataset.Payments)),
		zap.Int("settlements", len(dataset.Settlements)),
	)

	if err := uc.load(ctx, dataset, report); err != nil {
		uc.metrics.RecordRun("load_failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	for _, payment := range dataset.Payments {
		if payment.Suspicious {
			report.SuspiciousPayments++
		}
	}
	for _, settlement := range dataset.Settlements {
		if settlement.SLABreach {
			report.SLABreaches++
		}
	}
	uc.metrics.RecordRiskSignals(report.SuspiciousPayments, report.SLABreaches)

	uc.publishSuspicious(dataset)

	if uc.cache != nil {
		if err := uc.cache.InvalidateAnalytics(ctx); err != nil {
			uc.logger.Warn("failed to invalidate analytics cache", zap.Error(err))
		}
	}

	report.Duration = time.Since(report.StartedAt)
	uc.metrics.RecordRun("success")
	return report, nil
}

func (uc *DefaultETLUsecase) load(ctx context.Context, dataset *domain.Dataset, report *etldto.RunReport) error {
	loadStart := time.Now()

	stats, err := uc.sink.LoadCustomers(ctx, dataset.Customers)
	if err != nil {
		return fmt.Errorf("loading customers: %w", err)
	}
	report.Customers = stats
	uc.metrics.RecordEntityLoad("customers", stats.Attempted, stats.Inserted, stats.Skipped)

	stats, err = uc.sink.LoadMerchants(ctx, dataset.Merchants)
	if err != nil {
		return fmt.Errorf("loading merchants: %w", err)
	}
	report.Merchants = stats
	uc.metrics.RecordEntityLoad("merchants", stats.Attempted, stats.Inserted, stats.Skipped)

	stats, err = uc.sink.LoadPayments(ctx, dataset.Payments)
	if err != nil {
		return fmt.Errorf("loading payments: %w", err)
	}
	report.Payments = stats
	uc.metrics.RecordEntityLoad("payments", stats.Attempted, stats.Inserted, stats.Skipped)

	stats, err = uc.sink.LoadSettlements(ctx, dataset.Settlements)
	if err != nil {
		return fmt.Errorf("loading settlements: %w", err)
	}
	report.Settlements = stats
	uc.metrics.RecordEntityLoad("settlements", stats.Attempted, stats.Inserted, stats.Skipped)

	uc.metrics.RecordStageDuration("load", time.Since(loadStart).Seconds())
	return nil
}

// publishSuspicious is best-effort: a broker outage must not fail a load that
// already committed.
func (uc *DefaultETLUsecase) publishSuspicious(dataset *domain.Dataset) {
	if uc.pub == nil {
		return
	}

	events := make([]publisher.SuspiciousPaymentEvent, 0)
	for _, payment := range dataset.Payments {
		if !payment.Suspicious {
			continue
		}
		events = append(events, publisher.SuspiciousPaymentEvent{
			EventID:         uuid.NewString(),
			PaymentID:       payment.ID,
			CustomerID:      payment.CustomerID,
			MerchantID:      payment.MerchantID,
			Amount:          payment.Amount,
			Currency:        payment.Currency,
			RiskScore:       payment.RiskScore,
			PaymentStatus:   string(payment.Status),
			TransactionDate: payment.TransactionDate,
		})
	}

	if err := uc.pub.BatchPublishWithRetry(uc.topic, events, 100, 3); err != nil {
		uc.logger.Warn("failed to publish suspicious payment events",
			zap.Int("events", len(events)), zap.Error(err))
	}
}
