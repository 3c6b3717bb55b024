package router

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hireloop/scheduler-api/internal/config"
	"github.com/hireloop/scheduler-api/internal/handler"
	authhandler "github.com/hireloop/scheduler-api/internal/handler/auth"
	"github.com/hireloop/scheduler-api/internal/handler/availability"
	"github.com/hireloop/scheduler-api/internal/handler/booking"
	"github.com/hireloop/scheduler-api/internal/handler/feedback"
	"github.com/hireloop/scheduler-api/internal/handler/panel"
	"github.com/hireloop/scheduler-api/internal/middleware"
)

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         *authhandler.Handler
	panelH        *panel.Handler
	availabilityH *availability.Handler
	bookingH      *booking.Handler
	feedbackH     *feedback.Handler
	healthH       *handler.HealthHandler
	metrics       *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	cfg *config.Config,
	auth *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	panelH *panel.Handler,
	availabilityH *availability.Handler,
	bookingH *booking.Handler,
	feedbackH *feedback.Handler,
	healthH *handler.HealthHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		authH:         authH,
		panelH:        panelH,
		availabilityH: availabilityH,
		bookingH:      bookingH,
		feedbackH:     feedbackH,
		healthH:       healthH,
		metrics:       initRouterMetrics("scheduler"),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: cfg.Server.RequestTimeout}),
		middleware.RequestID(),
	)

	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   cfg.RateLimit.RequestsPerSecond,
		Burst: cfg.RateLimit.Burst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.healthH.RegisterRoutes(r.engine)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api")

	// Public routes
	r.authH.RegisterRoutes(api)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	r.panelH.RegisterRoutes(protected, r.auth)
	r.availabilityH.RegisterRoutes(protected, r.auth)
	r.bookingH.RegisterRoutes(protected, r.auth)
	r.feedbackH.RegisterRoutes(protected, r.auth)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

var (
	metricsOnce sync.Once
	metrics     *routerMetrics
)

// initRouterMetrics registers the collectors once per process; constructing
// more than one router shares them.
func initRouterMetrics(prefix string) *routerMetrics {
	metricsOnce.Do(func() {
		metrics = newRouterMetrics(prefix)
		prometheus.MustRegister(metrics.requestDuration, metrics.requestTotal, metrics.errorTotal)
	})
	return metrics
}

func newRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
