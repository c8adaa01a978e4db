package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-calc-history/internal/calculator"
	"go-calc-history/internal/handlers"
	"go-calc-history/internal/observability"
)

// NewRouter builds the HTTP router: observability middleware, health and
// metrics endpoints, and the calculator API backed by calc.
func NewRouter(calc *calculator.Calculator) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, calculator.NewAPI(calc))

	return r
}
