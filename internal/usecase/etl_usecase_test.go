package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/generator"
	publisher "github.com/finwatch/payments-analytics-service/internal/infrastructure/kafka"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/memstore"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Prometheus collectors register globally, so the test binary shares one set.
var testMetrics = metrics.NewETLMetrics()

type capturingPublisher struct {
	topic  string
	events []publisher.SuspiciousPaymentEvent
}

func (c *capturingPublisher) BatchPublishWithRetry(topic string, events []publisher.SuspiciousPaymentEvent, batchSize, maxRetries int) error {
	c.topic = topic
	c.events = append(c.events, events...)
	return nil
}

type recordingCache struct {
	invalidated int
}

func (c *recordingCache) Get(ctx context.Context, key string, dest any) error { return errors.New("empty") }
func (c *recordingCache) Set(ctx context.Context, key string, value any) error { return nil }
func (c *recordingCache) InvalidateAnalytics(ctx context.Context) error {
	c.invalidated++
	return nil
}

func smallParams() generator.Params {
	p := generator.DefaultParams(42)
	p.Now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	p.Customers = 50
	p.Merchants = 10
	p.Payments = 300
	return p
}

func TestETLRunLoadsAndPublishes(t *testing.T) {
	sink := memstore.NewSink()
	pub := &capturingPublisher{}
	cache := &recordingCache{}

	uc := NewDefaultETLUsecase(sink, pub, "suspicious-payments", cache, testMetrics, zap.NewNop())

	params := smallParams()
	report, err := uc.Run(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)

	assert.Equal(t, int64(params.Customers), report.Customers.Inserted)
	assert.Equal(t, int64(params.Merchants), report.Merchants.Inserted)
	assert.Equal(t, int64(params.Payments), report.Payments.Inserted)
	assert.Positive(t, report.Settlements.Inserted)

	assert.Equal(t, "suspicious-payments", pub.topic)
	assert.Len(t, pub.events, report.SuspiciousPayments)
	assert.Equal(t, 1, cache.invalidated)
}

func TestETLRunIsIdempotent(t *testing.T) {
	sink := memstore.NewSink()
	uc := NewDefaultETLUsecase(sink, nil, "", nil, testMetrics, zap.NewNop())

	params := smallParams()
	first, err := uc.Run(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, first.Payments.Attempted, first.Payments.Inserted)

	second, err := uc.Run(context.Background(), params)
	require.NoError(t, err)
	require.NotEqual(t, first.RunID, second.RunID)

	assert.Zero(t, second.Customers.Inserted)
	assert.Zero(t, second.Payments.Inserted)
	assert.Equal(t, second.Payments.Attempted, second.Payments.Skipped)

	_, _, payments, _ := sink.Counts()
	assert.Equal(t, params.Payments, payments)
}

func TestETLRunRejectsInvalidParams(t *testing.T) {
	sink := memstore.NewSink()
	uc := NewDefaultETLUsecase(sink, nil, "", nil, testMetrics, zap.NewNop())

	params := smallParams()
	params.Customers = -5

	report, err := uc.Run(context.Background(), params)
	require.Error(t, err)
	require.Nil(t, report)

	var cfgErr *generator.ConfigError
	require.True(t, errors.As(err, &cfgErr))

	customers, merchants, payments, settlements := sink.Counts()
	assert.Zero(t, customers+merchants+payments+settlements)
}
