package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/commonui/pkg/styles"
)

// defaultTracerName is the tracer used when none is configured.
const defaultTracerName = "commonui"

// Config configures the gallery server.
type Config struct {
	// Address is the listen address (default: "localhost:3100").
	Address string

	// Platform is the style platform used when a request names none.
	Platform styles.Platform

	// Metrics mounts /metrics when true (default: true).
	Metrics bool

	// Registerer receives the render metrics.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer

	// Gatherer backs /metrics.
	// Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	// Buckets are the render duration histogram buckets.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Logger receives request and render logs (default: slog.Default()).
	Logger *slog.Logger

	// Tracer starts the button.render spans.
	// Default: otel.Tracer("commonui") from the global provider.
	Tracer trace.Tracer

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

// Option configures the gallery server.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(c *Config) {
		c.Address = addr
	}
}

// WithPlatform sets the default style platform.
func WithPlatform(p styles.Platform) Option {
	return func(c *Config) {
		c.Platform = p
	}
}

// WithMetrics enables or disables the /metrics endpoint.
func WithMetrics(enabled bool) Option {
	return func(c *Config) {
		c.Metrics = enabled
	}
}

// WithRegistry registers and serves metrics from reg.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registerer = reg
		c.Gatherer = reg
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTracer sets the tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

// defaultConfig returns the default server configuration.
func defaultConfig() Config {
	return Config{
		Address:         "localhost:3100",
		Platform:        styles.Electron,
		Metrics:         true,
		Registerer:      prometheus.DefaultRegisterer,
		Gatherer:        prometheus.DefaultGatherer,
		Buckets:         prometheus.DefBuckets,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves the button gallery over HTTP.
type Server struct {
	config  Config
	router  chi.Router
	metrics *metrics
	tracer  trace.Tracer
	logger  *slog.Logger

	httpServer *http.Server
}

// New creates a gallery server.
//
// Example:
//
//	srv := server.New(
//	    server.WithAddress(cfg.Address()),
//	    server.WithPlatform(styles.Mobile),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) *Server {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}

	s := &Server{
		config:  config,
		metrics: newMetrics(config.Registerer, config.Buckets),
		tracer:  tracer,
		logger:  logger.With("component", "server"),
	}
	s.router = s.routes()
	return s
}

// routes builds the chi router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleGallery)
	r.Get("/button", s.handleButton)
	r.Get("/variants", s.handleVariants)
	r.Get("/healthz", s.handleHealth)

	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's http.Handler for mounting in other routers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			"address", s.config.Address,
			"platform", s.config.Platform.String())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
