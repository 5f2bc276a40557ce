package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/service"
	"github.com/Ahmed101Noor/Ecommerce-Task/pkg/health"
	"github.com/Ahmed101Noor/Ecommerce-Task/pkg/middleware"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	productService *service.ProductService,
	customerService *service.CustomerService,
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	productHandler := NewProductHandler(productService, logger)
	customerHandler := NewCustomerHandler(customerService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{name}", productHandler.Get)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/{name}", customerHandler.Get)
			r.Post("/{name}/credit", customerHandler.Credit)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(CustomerIDFromHeader)

			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{name}", cartHandler.RemoveItem)
		})

		r.With(CustomerIDFromHeader).Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
