// Package api exposes the catalog, eligibility, user and voice operations
// over HTTP.
package api

import (
	"net/http"
	"time"

	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/common/config"
	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/i18n"
	"himaya-assistant/internal/notify"
	"himaya-assistant/internal/users"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "HIMAYA API"

// Config holds the HTTP surface settings.
type Config struct {
	Version         string
	DefaultLanguage string
	RequestTimeout  time.Duration
	AllowedOrigins  []string
	MetricsEnabled  bool
	MetricsPath     string
}

// LoadConfig reads the server and metrics sections of cfg.
func LoadConfig(cfg *config.Config) Config {
	return Config{
		Version:         cfg.App.Version,
		DefaultLanguage: cfg.App.DefaultLanguage,
		RequestTimeout:  config.GetDuration(cfg.Server.RequestTimeout),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsPath:     cfg.Metrics.Path,
	}
}

// Server holds the handler dependencies. Notifier may be nil.
type Server struct {
	config    Config
	catalog   *catalog.Catalog
	evaluator *eligibility.Evaluator
	generator *dialogue.Generator
	users     *users.Service
	notifier  *notify.Handler
	errors    *errors.ErrorHandler
	logger    logger.Logger
	now       func() time.Time
}

func NewServer(
	cfg Config,
	c *catalog.Catalog,
	evaluator *eligibility.Evaluator,
	generator *dialogue.Generator,
	userService *users.Service,
	notifier *notify.Handler,
	log logger.Logger,
) *Server {
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	cfg.DefaultLanguage = i18n.LanguageOr(cfg.DefaultLanguage, i18n.DefaultLanguage)
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	log = log.WithFields(map[string]interface{}{"component": "api"})
	return &Server{
		config:    cfg,
		catalog:   c,
		evaluator: evaluator,
		generator: generator,
		users:     userService,
		notifier:  notifier,
		errors:    errors.NewErrorHandler(log),
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.instrument)
	r.Use(chimw.Recoverer)
	r.Use(cors(s.config.AllowedOrigins))
	if s.config.RequestTimeout > 0 {
		r.Use(chimw.Timeout(s.config.RequestTimeout))
	}

	if s.config.MetricsEnabled {
		r.Handle(s.config.MetricsPath, promhttp.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/", s.index)
		api.Get("/health", s.health)

		api.Route("/schemes", func(sr chi.Router) {
			sr.Get("/", s.listSchemes)
			sr.Get("/categories", s.categories)
			sr.Get("/category/{category}", s.schemesByCategory)
			sr.Get("/search", s.searchSchemes)
			sr.Post("/check-eligibility", s.checkEligibility)
			sr.Get("/{id}", s.getScheme)
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Post("/register", s.registerUser)
			ur.Route("/{phone}", func(item chi.Router) {
				item.Get("/", s.getUser)
				item.Patch("/", s.updateUser)
				item.Get("/eligible-schemes", s.eligibleSchemes)
				item.Post("/notify-eligible", s.notifyEligible)
			})
		})

		api.Route("/voice", func(vr chi.Router) {
			vr.Get("/languages", s.languages)
			vr.Post("/process", s.processVoice)
			vr.Post("/tts", s.tts)
			vr.Post("/ivr/callback", s.ivrCallback)
			vr.Get("/prompts/{context}", s.prompts)
		})
	})

	return r
}
