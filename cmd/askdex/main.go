package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/calc"
	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/config"
	dbRedis "github.com/kailas-cloud/askdex/internal/db/redis"
	"github.com/kailas-cloud/askdex/internal/domain"
	logpkg "github.com/kailas-cloud/askdex/internal/logger"
	"github.com/kailas-cloud/askdex/internal/metrics"
	"github.com/kailas-cloud/askdex/internal/registry"
	indexrepo "github.com/kailas-cloud/askdex/internal/repository/index"
	"github.com/kailas-cloud/askdex/internal/retrieve"
	"github.com/kailas-cloud/askdex/internal/route"
	chiTransport "github.com/kailas-cloud/askdex/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/askdex/internal/transport/openai"
	healthuc "github.com/kailas-cloud/askdex/internal/usecase/health"
	queryuc "github.com/kailas-cloud/askdex/internal/usecase/query"
	"github.com/kailas-cloud/askdex/internal/version"
)

func main() {
	env := config.GetEnv()
	if env == "local" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting askdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterQueryMetrics()

	embedder := openaiTransport.NewEmbedder(&openaiTransport.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	reg, err := buildRegistry(cfg, store)
	if err != nil {
		logger.Fatal("Failed to load domain registry", zap.Error(err))
	}
	for _, d := range reg.InPriorityOrder() {
		logger.Info("Domain loaded",
			zap.String("domain", d.Def.Name.String()),
			zap.Int("records", len(d.Records)),
		)
	}

	// Primary expression converter only when explicitly configured.
	var converter calc.Converter
	if cfg.Converter.Model != "" && cfg.Embedding.APIKey != "" {
		converter = openaiTransport.NewConverter(
			cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Converter.Model,
		)
		logger.Info("Expression converter enabled", zap.String("model", cfg.Converter.Model))
	}
	calcSvc := calc.New(converter, logger)

	gateway := retrieve.New(embedder, time.Duration(cfg.Retrieval.TimeoutSec)*time.Second, logger)
	router := route.New(reg.Definitions())
	querySvc := queryuc.New(reg, router, gateway, calcSvc, logger)
	healthSvc := healthuc.New(store, newEmbeddingHealthChecker(embedder))

	server := chiTransport.NewServer(querySvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildRegistry loads both retrieval domains and the math domain in router
// priority order.
func buildRegistry(cfg config.Config, store *dbRedis.Store) (*registry.Registry, error) {
	carDef := catalog.Cars()
	carRecords, err := registry.LoadRecords(cfg.Domains.Car.Metadata, carDef)
	if err != nil {
		return nil, fmt.Errorf("load car records: %w", err)
	}

	countryDef := catalog.Countries()
	countryRecords, err := registry.LoadRecords(cfg.Domains.Country.Metadata, countryDef)
	if err != nil {
		return nil, fmt.Errorf("load country records: %w", err)
	}

	return registry.New(
		&registry.Domain{
			Def:      carDef,
			Records:  carRecords,
			Searcher: indexrepo.New(store, carDef.Name.String()),
		},
		&registry.Domain{
			Def:      countryDef,
			Records:  countryRecords,
			Searcher: indexrepo.New(store, countryDef.Name.String()),
		},
		&registry.Domain{Def: catalog.Arithmetic()},
	), nil
}

// embeddingHealthChecker wraps domain.Embedder to implement health.EmbeddingChecker.
type embeddingHealthChecker struct {
	embedder domain.Embedder
}

func newEmbeddingHealthChecker(embedder domain.Embedder) *embeddingHealthChecker {
	return &embeddingHealthChecker{embedder: embedder}
}

func (h *embeddingHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.embedder.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("embedding health check: %w", err)
		}
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
