package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/http/handlers"
	rl "github.com/rogerio-castellano/paintchain/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/paintchain/docs"
)

type routerOptions struct {
	issuer  *auth.Issuer
	limiter *rl.Limiter
	logging bool
}

type Option func(*routerOptions)

// WithIssuer verifies bearer tokens and attaches their session.
func WithIssuer(i *auth.Issuer) Option {
	return func(o *routerOptions) { o.issuer = i }
}

func WithLimiter(l *rl.Limiter) Option {
	return func(o *routerOptions) { o.limiter = l }
}

func WithRequestLogging() Option {
	return func(o *routerOptions) { o.logging = true }
}

func NewRouter(opts ...Option) http.Handler {
	o := routerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if o.logging {
		r.Use(RequestLogger)
	}
	if o.limiter != nil {
		r.Use(o.limiter.Middleware)
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionMiddleware(o.issuer))

		r.Get("/health", handlers.HealthHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Get("/me", handlers.MeHandler)

		r.Get("/paints", handlers.GetPaintsHandler)
		r.Get("/dealers", handlers.GetDealersHandler)
		r.Get("/orders", handlers.GetOrdersHandler)
		r.Post("/orders/create", handlers.CreateOrderHandler)
		r.Get("/demand", handlers.GetDemandSignalsHandler)
		r.Post("/demand/import", handlers.ImportDemandHandler)

		r.Get("/analytics/dashboard", handlers.DashboardHandler)
		r.Get("/analytics/demand", handlers.DemandHandler)
		r.Get("/analytics/lost-sales", handlers.LostSalesHandler)
		r.Get("/analytics/dealer-health", handlers.DealerHealthHandler)
		r.Get("/deadstock", handlers.DeadStockHandler)
		r.Get("/alerts", handlers.AlertsHandler)
		r.Get("/ai/recommendations", handlers.RecommendationsHandler)
		r.Get("/ai/insights", handlers.InsightsHandler)

		r.Post("/inventory/update", handlers.UpdateInventoryHandler)
		r.Get("/inventory/movements", handlers.GetMovementsHandler)
		r.Get("/inventory/movements/export", handlers.ExportMovementsHandler)

		r.Get("/resale/list", handlers.GetListingsHandler)
		r.Get("/resale/my-listings", handlers.GetMyListingsHandler)
		r.Post("/resale/create", handlers.CreateListingHandler)
		r.Post("/resale/buy", handlers.BuyListingHandler)
	})
	return r
}
