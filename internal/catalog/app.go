package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ProductAPI/pkg/kit"
)

// HTTPDeps carries what the handler needs beyond the Server itself.
type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

// NewHandler composes the service: shared stages first, then the ops
// endpoints, then the gated catalog routes.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if s.Log == nil {
		s.Log = deps.Log
	}

	r := chi.NewRouter()
	r.Use(stages(deps)...)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.Ready)
	setupMetrics(r, s, deps)

	r.Mount("/", s.Routes())
	return r
}

func stages(deps HTTPDeps) []func(http.Handler) http.Handler {
	out := []func(http.Handler) http.Handler{
		chimw.RequestID,
		kit.Recoverer(deps.Log),
		kit.Logging(deps.Log),
	}
	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		out = append(out, metrics.Middleware(deps.Service, kit.RoutePattern))
	}
	return out
}

func setupMetrics(r chi.Router, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products currently in the catalog",
		},
		func() float64 { return float64(s.Store.Len(context.Background())) },
	))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
