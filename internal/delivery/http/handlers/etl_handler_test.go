package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finwatch/payments-analytics-service/internal/config"
	"github.com/finwatch/payments-analytics-service/internal/generator"
	etldto "github.com/finwatch/payments-analytics-service/internal/usecase/dto/etl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRunner struct {
	params generator.Params
	report *etldto.RunReport
	err    error
}

func (s *stubRunner) Run(_ context.Context, params generator.Params) (*etldto.RunReport, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

type stubSchema struct {
	calls int
	err   error
}

func (s *stubSchema) InitSchema() error {
	s.calls++
	return s.err
}

func testGeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Seed:                42,
		Customers:           50,
		Merchants:           10,
		Payments:            200,
		WindowDays:          30,
		SettlementCycleDays: 1,
		SLADays:             2,
		BreachProbability:   0.6,
		OutlierFraction:     0.05,
		RiskScoreThreshold:  70,
		HighValueThreshold:  10000,
		Workers:             1,
	}
}

func TestETLHandlerRunUsesConfiguredDefaults(t *testing.T) {
	runner := &stubRunner{report: &etldto.RunReport{RunID: "run-1"}}
	h := NewETLHandler(runner, &stubSchema{}, testGeneratorConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/etl/run", nil)
	rec := httptest.NewRecorder()
	h.HandleRun(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), runner.params.Seed)
	assert.Equal(t, 50, runner.params.Customers)
	assert.Equal(t, 200, runner.params.Payments)
	assert.False(t, runner.params.Now.IsZero())
	assert.Contains(t, rec.Body.String(), "run-1")
}

func TestETLHandlerRunAppliesOverrides(t *testing.T) {
	runner := &stubRunner{report: &etldto.RunReport{RunID: "run-2"}}
	h := NewETLHandler(runner, &stubSchema{}, testGeneratorConfig(), zap.NewNop())

	body := `{"seed": 7, "payments": 1000}`
	req := httptest.NewRequest(http.MethodPost, "/api/etl/run", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRun(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), runner.params.Seed)
	assert.Equal(t, 1000, runner.params.Payments)
	assert.Equal(t, 50, runner.params.Customers, "unset fields keep their defaults")
}

func TestETLHandlerRunBadRequest(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		runner := &stubRunner{report: &etldto.RunReport{}}
		h := NewETLHandler(runner, &stubSchema{}, testGeneratorConfig(), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/etl/run", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.HandleRun(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid generation params", func(t *testing.T) {
		runner := &stubRunner{err: &generator.ConfigError{Field: "payments", Reason: "must be positive"}}
		h := NewETLHandler(runner, &stubSchema{}, testGeneratorConfig(), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/etl/run", strings.NewReader(`{"payments": -1}`))
		rec := httptest.NewRecorder()
		h.HandleRun(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "payments")
	})
}

func TestETLHandlerRunInternalError(t *testing.T) {
	runner := &stubRunner{err: errors.New("database down")}
	h := NewETLHandler(runner, &stubSchema{}, testGeneratorConfig(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/etl/run", nil)
	rec := httptest.NewRecorder()
	h.HandleRun(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestETLHandlerInitialize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		schema := &stubSchema{}
		h := NewETLHandler(&stubRunner{}, schema, testGeneratorConfig(), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/etl/initialize", nil)
		rec := httptest.NewRecorder()
		h.HandleInitialize(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, schema.calls)
	})

	t.Run("failure", func(t *testing.T) {
		schema := &stubSchema{err: errors.New("migration failed")}
		h := NewETLHandler(&stubRunner{}, schema, testGeneratorConfig(), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/etl/initialize", nil)
		rec := httptest.NewRecorder()
		h.HandleInitialize(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
