package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/careconnect-api/internal/config"
	"github.com/jwalitptl/careconnect-api/internal/handler/health"
	prometheusHandler "github.com/jwalitptl/careconnect-api/internal/handler/prometheus"
	reportHandler "github.com/jwalitptl/careconnect-api/internal/handler/report"
	"github.com/jwalitptl/careconnect-api/internal/middleware"
	"github.com/jwalitptl/careconnect-api/internal/repository"
	"github.com/jwalitptl/careconnect-api/internal/repository/mysql"
	"github.com/jwalitptl/careconnect-api/internal/repository/postgres"
	"github.com/jwalitptl/careconnect-api/internal/router"
	reportService "github.com/jwalitptl/careconnect-api/internal/service/report"
	"github.com/jwalitptl/careconnect-api/pkg/logger"
	"github.com/jwalitptl/careconnect-api/pkg/metrics"
)

const poolStatsInterval = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	l := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		JSON:       true,
	})
	log.Logger = l.Zerolog()
	gin.SetMode(gin.ReleaseMode)

	// Initialize database
	db, reportRepo, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize metrics
	promH := prometheusHandler.New()
	m := metrics.NewMetrics(cfg.Monitoring.Namespace, promH.Registry())

	// Initialize services
	reportSvc := reportService.NewService(reportRepo, m, reportService.Config{
		CacheTTL:        cfg.Reports.CacheTTL,
		QueryTimeout:    cfg.Reports.QueryTimeout,
		BreakerFailures: cfg.Reports.BreakerFailures,
		BreakerTimeout:  cfg.Reports.BreakerTimeout,
	})

	// Initialize handlers
	reportH := reportHandler.NewHandler(reportSvc)
	healthH := health.NewHandler(db)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.Security.AllowedOrigins

	var metricsH gin.HandlerFunc
	if cfg.Monitoring.PrometheusEnabled {
		metricsH = promH.Handler()
	}

	// Setup router
	r := router.NewRouter(reportH, healthH, metricsH, m, router.RouterConfig{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		CORSConfig:       corsConfig,
		CacheConfig:      middleware.DefaultCacheConfig(),
		MetricsPath:      cfg.Monitoring.MetricsPath,
	})
	r.Setup()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go trackPoolStats(ctx, db, m, poolStatsInterval)

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.Timeout(),
		WriteTimeout: cfg.Server.Timeout(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}

func openDatabase(cfg config.DatabaseConfig) (*sqlx.DB, repository.ReportRepository, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := postgres.NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, postgres.NewReportRepository(db), nil
	case "mysql":
		db, err := mysql.NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, mysql.NewReportRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func trackPoolStats(ctx context.Context, db *sqlx.DB, m *metrics.Metrics, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.DatabaseConnections.Set(float64(db.Stats().OpenConnections))
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
