package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/finwatch/payments-analytics-service/internal/config"
	"github.com/finwatch/payments-analytics-service/internal/generator"
	"github.com/finwatch/payments-analytics-service/internal/usecase"
	etldto "github.com/finwatch/payments-analytics-service/internal/usecase/dto/etl"
	"go.uber.org/zap"
)

// ETLRunner executes one generate-and-load pass.
type ETLRunner interface {
	Run(ctx context.Context, params generator.Params) (*etldto.RunReport, error)
}

// SchemaInitializer applies the SQL schema objects (views, indexes).
type SchemaInitializer interface {
	InitSchema() error
}

type ETLHandler struct {
	runner   ETLRunner
	schema   SchemaInitializer
	defaults config.GeneratorConfig
	logger   *zap.Logger
}

func NewETLHandler(runner ETLRunner, schema SchemaInitializer, defaults config.GeneratorConfig, logger *zap.Logger) *ETLHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ETLHandler{runner: runner, schema: schema, defaults: defaults, logger: logger}
}

// runRequest carries optional overrides for the configured generation
// parameters. Absent fields keep their configured defaults.
type runRequest struct {
	Seed       *int64 `json:"seed"`
	Customers  *int   `json:"customers"`
	Merchants  *int   `json:"merchants"`
	Payments   *int   `json:"payments"`
	WindowDays *int   `json:"window_days"`
}

// HandleInitialize handles POST /api/etl/initialize
func (h *ETLHandler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	if err := h.schema.InitSchema(); err != nil {
		h.logger.Error("schema initialization failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "schema initialization failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "initialized"})
}

// HandleRun handles POST /api/etl/run
func (h *ETLHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	params := usecase.GeneratorParams(h.defaults)

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Seed != nil {
		params.Seed = *req.Seed
	}
	if req.Customers != nil {
		params.Customers = *req.Customers
	}
	if req.Merchants != nil {
		params.Merchants = *req.Merchants
	}
	if req.Payments != nil {
		params.Payments = *req.Payments
	}
	if req.WindowDays != nil {
		params.WindowDays = *req.WindowDays
	}

	report, err := h.runner.Run(r.Context(), params)
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			respondWithError(w, http.StatusBadRequest, cfgErr.Error())
			return
		}
		h.logger.Error("etl run failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "etl run failed")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
