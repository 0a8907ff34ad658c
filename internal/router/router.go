package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/careconnect-api/internal/middleware"
	"github.com/jwalitptl/careconnect-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine      *gin.Engine
	reportH     Handler
	healthH     Handler
	metricsH    gin.HandlerFunc
	metricsPath string
	metrics     *metrics.Metrics
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORSConfig       middleware.CORSConfig
	CacheConfig      middleware.CacheConfig
	// MetricsPath is left unmounted when empty or when metricsH is nil
	MetricsPath string
}

func NewRouter(
	reportH Handler,
	healthH Handler,
	metricsH gin.HandlerFunc,
	m *metrics.Metrics,
	config RouterConfig,
) *Router {
	engine := gin.New()

	r := &Router{
		engine:      engine,
		reportH:     reportH,
		healthH:     healthH,
		metricsH:    metricsH,
		metricsPath: config.MetricsPath,
		metrics:     m,
	}

	// RequestID runs first so every later middleware can read it
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.CORS(config.CORSConfig),
	)

	if config.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	engine.Use(middleware.Cache(config.CacheConfig))

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.healthH.RegisterRoutes(root)
	r.reportH.RegisterRoutes(root)

	if r.metricsH != nil && r.metricsPath != "" {
		r.engine.GET(r.metricsPath, r.metricsH)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		// unmatched routes share one label to keep cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			errType := "client"
			if c.Writer.Status() >= 500 {
				errType = "server"
			}
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, errType).Inc()
		}
	}
}
