package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdclothing/storefront-backend/api/controllers"
	"github.com/jdclothing/storefront-backend/api/middleware"
	cartsvc "github.com/jdclothing/storefront-backend/internal/cart"
	"github.com/jdclothing/storefront-backend/internal/catalog"
	checkoutsvc "github.com/jdclothing/storefront-backend/internal/checkout"
	"github.com/jdclothing/storefront-backend/pkg/config"
	"github.com/jdclothing/storefront-backend/pkg/logger"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config          *config.Config
	Logger          *logger.Logger
	Metrics         *middleware.Metrics
	Pingers         map[string]controllers.Pinger
	CatalogService  catalog.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.Pingers))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.CatalogService, deps.Logger))
			r.Get("/featured", controllers.ProductFeatured(deps.CatalogService, deps.Logger))
			r.Get("/{productId}", controllers.ProductDetail(deps.CatalogService, deps.Logger))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/facets", controllers.CatalogFacets(deps.CatalogService, deps.Logger))
			r.Get("/categories", controllers.CatalogCategories(deps.CatalogService, deps.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(deps.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.CartService, deps.Logger))
				r.Post("/quote", controllers.CartQuote(deps.CheckoutService, deps.Logger))
				r.Route("/lines", func(r chi.Router) {
					r.Post("/", controllers.CartAddLine(deps.CartService, deps.Logger))
					r.Post("/quick-add", controllers.CartQuickAdd(deps.CartService, deps.Logger))
					r.Patch("/{index}", controllers.CartSetQuantity(deps.CartService, deps.Logger))
					r.Delete("/{index}", controllers.CartRemoveLine(deps.CartService, deps.Logger))
				})
			})

			r.Post("/checkout", controllers.Checkout(deps.CheckoutService, deps.Logger))
		})
	})

	return r
}
