package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"go-calc-history/internal/handlers"
	"go-calc-history/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// API exposes one shared Calculator over HTTP. The calculator itself is
// single-threaded; the mutex serialises concurrent requests in front of it.
type API struct {
	mu   sync.Mutex
	calc *Calculator
}

// NewAPI wraps calc for HTTP serving.
func NewAPI(calc *Calculator) *API {
	return &API{calc: calc}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, ErrNothingToUndo), errors.Is(err, ErrNothingToRedo):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Evaluate handles POST /calculator/evaluate. It demonstrates: custom child
// spans, span attributes & events, custom metrics, trace-correlated
// structured logging, error recording, and request-ID propagation.
func (a *API) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctx, span := tracer.Start(ctx, "calculator.evaluate")
		defer span.End()
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", req.Op),
		trace.WithAttributes(
			attribute.String("calculator.operation", req.Op),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	for _, v := range req.Operands {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			observability.RecordError(ctx, span, logger, errorCounter, req.Op, "invalid numeric input", fmt.Errorf("operand %g", v), http.StatusBadRequest, w)
			return
		}
	}
	span.SetAttributes(attribute.Float64Slice("calculator.operands", req.Operands))

	start := time.Now()
	a.mu.Lock()
	rec, err := a.calc.Evaluate(ctx, req.Op, req.Operands)
	size := a.calc.Len()
	a.mu.Unlock()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, req.Op, err.Error(), err, statusFor(err), w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", rec.Operator))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, rec.Result, attrs)
	historyGauge.Record(ctx, int64(size))

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", rec.Result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", rec.Result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", rec.Operator),
		zap.Float64s("operands", rec.Operands),
		zap.Float64("result", rec.Result),
		zap.Int("history_size", size),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, toRecordResponse(rec))
}

// History handles GET /calculator/history.
func (a *API) History(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "calculator.history")
	defer span.End()

	a.mu.Lock()
	records := a.calc.History()
	a.mu.Unlock()

	resp := HistoryResponse{
		Count:   len(records),
		Records: make([]RecordResponse, len(records)),
	}
	for i, rec := range records {
		resp.Records[i] = toRecordResponse(rec)
	}

	span.SetAttributes(attribute.Int("calculator.history.size", len(records)))
	span.SetStatus(codes.Ok, "")
	historyGauge.Record(ctx, int64(len(records)))

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Undo handles POST /calculator/undo.
func (a *API) Undo(w http.ResponseWriter, r *http.Request) {
	a.step(w, r, "undo", func() (*Record, error) { return a.calc.Undo() })
}

// Redo handles POST /calculator/redo.
func (a *API) Redo(w http.ResponseWriter, r *http.Request) {
	a.step(w, r, "redo", func() (*Record, error) { return a.calc.Redo() })
}

// step is the shared implementation for the undo and redo endpoints.
func (a *API) step(w http.ResponseWriter, r *http.Request, opName string, move func() (*Record, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(attribute.String("calculator.operation", opName)),
	)
	defer span.End()

	a.mu.Lock()
	rec, err := move()
	size := a.calc.Len()
	a.mu.Unlock()

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, statusFor(err), w)
		return
	}

	resp := UndoRedoResponse{Count: size}
	if rec != nil {
		rr := toRecordResponse(*rec)
		resp.Current = &rr
	}

	historyGauge.Record(ctx, int64(size))
	span.SetAttributes(attribute.Int("calculator.history.size", size))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator history moved",
		zap.String("operation", opName),
		zap.Int("history_size", size),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Clear handles DELETE /calculator/history.
func (a *API) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "calculator.clear")
	defer span.End()

	a.mu.Lock()
	a.calc.Clear()
	a.mu.Unlock()

	historyGauge.Record(ctx, 0)
	span.SetStatus(codes.Ok, "")

	w.WriteHeader(http.StatusNoContent)
}
