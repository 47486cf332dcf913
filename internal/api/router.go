package api

import (
	"log/slog"
	"net/http"
	"time"

	_ "credit-application/docs"
	"credit-application/internal/api/handler"
	"credit-application/internal/api/handler/dto"
	mw "credit-application/internal/api/middleware"
	"credit-application/internal/config"
	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func SetupRouter(customerService customer.CustomerService, creditService credit.CreditService, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	validator := dto.NewValidator(cfg.Credit.MaxInstallments, time.Now)
	errs := handler.NewErrorResponder(apperrors.NewClassifier(cfg.Errors.InvalidArgumentStatus), logger)

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, customerService, validator, errs, logger)
	setupCreditRoutes(router, creditService, validator, errs, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupCustomerRoutes(router chi.Router, svc customer.CustomerService, v *dto.Validator, errs *handler.ErrorResponder, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, v, errs, logger)

	router.Route("/api/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Patch("/", h.UpdateCustomer)
		r.Get("/{customerID}", h.GetCustomer)
		r.Delete("/{customerID}", h.DeleteCustomer)
	})
}

func setupCreditRoutes(router chi.Router, svc credit.CreditService, v *dto.Validator, errs *handler.ErrorResponder, logger *slog.Logger) {
	h := handler.NewCreditHandler(svc, v, errs, logger)

	router.Route("/api/credits", func(r chi.Router) {
		r.Post("/", h.CreateCredit)
		r.Get("/", h.ListCredits)
		r.Get("/{creditCode}", h.GetCredit)
	})
}
