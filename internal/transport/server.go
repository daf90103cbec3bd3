package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const (
	defaultPingInterval       = 15 * time.Second
	defaultLoginRatePerMinute = 30
	maxBodyBytes              = 1 << 20
)

// Config tunes the HTTP surface.
type Config struct {
	// Key is the channel and chaincode the live routes stream from.
	Key                ledger.Key
	Network            string
	LoginRatePerMinute int
	PingInterval       time.Duration
	// WSOriginPatterns lists the cross-origin hosts allowed to open the
	// WebSocket stream. Same-origin requests are always accepted.
	WSOriginPatterns []string
}

// Server routes HTTP requests to the gateway components.
type Server struct {
	records    Records
	provenance Provenance
	gate       Gate
	live       LiveFeed
	archive    Archive
	metrics    Metrics
	cfg        Config
	limiter    *loginLimiter
	logger     *zap.Logger
}

// NewServer builds a Server. archive may be nil.
func NewServer(records Records, provenance Provenance, gate Gate, feed LiveFeed, archive Archive, metrics Metrics, cfg Config, logger *zap.Logger) (*Server, error) {
	switch {
	case records == nil:
		return nil, errors.New("records are required")
	case provenance == nil:
		return nil, errors.New("provenance aggregator is required")
	case gate == nil:
		return nil, errors.New("authorization gate is required")
	case feed == nil:
		return nil, errors.New("live feed is required")
	case metrics == nil:
		return nil, errors.New("http metrics is required")
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaultPingInterval
	}
	if cfg.LoginRatePerMinute <= 0 {
		cfg.LoginRatePerMinute = defaultLoginRatePerMinute
	}
	return &Server{
		records:    records,
		provenance: provenance,
		gate:       gate,
		live:       feed,
		archive:    archive,
		metrics:    metrics,
		cfg:        cfg,
		limiter:    newLoginLimiter(cfg.LoginRatePerMinute),
		logger:     logger.Named("http"),
	}, nil
}

var (
	writers     = []model.Role{model.RoleFarmer, model.RoleAdmin}
	labs        = []model.Role{model.RoleLab, model.RoleAdmin}
	admins      = []model.Role{model.RoleAdmin}
	eventReader = []model.Role{model.RoleFarmer, model.RoleLab, model.RoleAdmin}
)

// Handler returns the routed, CORS-enabled handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/stats", s.stats)
	r.Get("/reports/summary", s.summary)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.With(s.throttleLogin).Post("/login", s.login)
		r.With(s.require()).Get("/me", s.me)
		r.With(s.require()).Post("/logout", s.logout)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(s.require(admins...))
		r.Get("/", s.listUsers)
		r.Post("/", s.registerUser)
	})

	r.With(s.require(writers...)).Post("/collection-event", s.createCollectionEvent)
	r.Route("/collection-events", func(r chi.Router) {
		r.With(s.require(eventReader...)).Get("/", s.listCollectionEvents)
		r.Get("/by-collector/{id}", s.collectionEventsByCollector)
		r.Get("/{id}", s.getCollectionEvent)
		r.With(s.require(writers...)).Put("/{id}", s.updateCollectionEvent)
		r.With(s.require(writers...)).Delete("/{id}", s.deleteCollectionEvent)
	})

	r.With(s.require(labs...)).Post("/quality-test", s.createQualityTest)
	r.Route("/quality-tests", func(r chi.Router) {
		r.Get("/", s.listQualityTests)
		r.Get("/by-event/{id}", s.qualityTestsByEvent)
		r.Get("/{id}", s.getQualityTest)
		r.With(s.require(labs...)).Put("/{id}", s.updateQualityTest)
		r.With(s.require(labs...)).Delete("/{id}", s.deleteQualityTest)
	})

	r.With(s.require(admins...)).Post("/processing-step", s.createProcessingStep)
	r.Route("/processing-steps", func(r chi.Router) {
		r.Get("/", s.listProcessingSteps)
		r.Get("/by-batch/{id}", s.processingStepsByBatch)
		r.Get("/{id}", s.getProcessingStep)
		r.With(s.require(admins...)).Put("/{id}", s.updateProcessingStep)
		r.With(s.require(admins...)).Delete("/{id}", s.deleteProcessingStep)
	})

	r.Post("/batch", s.createBatch)
	r.Get("/batch/{id}", s.getBatch)
	r.Put("/batch/{id}", s.updateBatch)
	r.Delete("/batch/{id}", s.deleteBatch)
	r.Get("/batches", s.listBatches)

	r.With(s.require(writers...)).Post("/qr/generate", s.generateTracking)
	r.Get("/qr/track/{trackingId}", s.trackBatch)

	r.Route("/live/blocks", func(r chi.Router) {
		r.Get("/", s.streamBlocks)
		r.Get("/ws", s.streamBlocksWS)
		r.Get("/recent", s.recentBlocks)
	})

	return cors.AllowAll().Handler(r)
}

// accessLog logs and measures every request by its route pattern.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Observe(r.Method, route, status, started)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(started)),
			zap.String("requestId", middleware.GetReqID(r.Context())),
		)
	})
}
