package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/format"
	"github.com/cleared-dev/statements/internal/identifiers"
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/rates"
	"github.com/cleared-dev/statements/internal/statements"
)

// Options configures a Server. Zero values fall back to defaults.
type Options struct {
	Logger     *slog.Logger
	Classifier *accounts.Classifier
	Builder    *statements.Builder
	Catalogue  *lineitem.Catalogue
	Rates      rates.Rates
	Formatter  *format.Formatter
	// Overrides is the project's account mapping. Request overrides are laid
	// over it.
	Overrides accounts.Mapping

	RateLimit      int
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	Version        string
}

// Server holds the handlers' dependencies.
type Server struct {
	logger     *slog.Logger
	classifier *accounts.Classifier
	builder    *statements.Builder
	catalogue  *lineitem.Catalogue
	rates      rates.Rates
	formatter  *format.Formatter
	overrides  accounts.Mapping
	validate   *validator.Validate

	rateLimit int
	timeout   time.Duration
	maxBody   int64
	version   string
}

// New creates a Server.
func New(opts Options) *Server {
	s := &Server{
		logger:     opts.Logger,
		classifier: opts.Classifier,
		builder:    opts.Builder,
		catalogue:  opts.Catalogue,
		rates:      opts.Rates,
		formatter:  opts.Formatter,
		overrides:  opts.Overrides,
		validate:   identifiers.NewValidator(),
		rateLimit:  opts.RateLimit,
		timeout:    opts.RequestTimeout,
		maxBody:    opts.MaxBodyBytes,
		version:    opts.Version,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.rateLimit <= 0 {
		s.rateLimit = 120
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}
	if s.maxBody <= 0 {
		s.maxBody = 10 << 20
	}
	if s.catalogue == nil {
		s.catalogue = lineitem.Default()
	}
	if s.classifier == nil {
		s.classifier = accounts.NewClassifier(accounts.DefaultRules())
	}
	if s.builder == nil {
		s.builder = statements.NewBuilder(s.classifier, s.catalogue)
	}
	if s.rates == (rates.Rates{}) {
		s.rates = rates.Default()
	}
	if s.formatter == nil {
		s.formatter = format.Default()
	}
	return s
}

// Handler returns the router with the middleware stack installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		s.logRequests,
		middleware.Recoverer,
		middleware.Timeout(s.timeout),
	)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Use(httprate.Limit(s.rateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				Problem(w, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
			}),
		))
		r.Post("/validate", s.handleValidate)
		r.Post("/statements", s.handleStatements)
		r.Post("/ratios", s.handleRatios)
		r.Post("/tax", s.handleTax)
		r.Get("/classify/{number}", s.handleClassify)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
