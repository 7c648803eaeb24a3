package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Bookshop/pkg/kit"
)

const rateWindow = time.Minute

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry
	Metrics  *kit.Metrics

	MetricsToken string
	// RatePerMinute caps requests per client; zero disables the limiter.
	RatePerMinute int
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
	r.Use(kit.NewIPRateLimiter(deps.RatePerMinute, rateWindow).Middleware)
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil || deps.Metrics == nil {
		return
	}

	r.Use(deps.Metrics.Middleware(deps.Service, kit.RoutePatternOrPath))

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
