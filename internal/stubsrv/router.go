package stubsrv

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the stub API router. The route shapes mirror the real
// inventory service so the client cannot tell the difference.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(RateLimitMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", GetProductsHandler)
		r.Get("/storefront/products", GetStorefrontProductsHandler)
		r.Get("/storefront/products/{id}", GetStorefrontProductHandler)
		r.Post("/orders", CreateOrderHandler)
		r.Get("/storefront/my-orders", GetMyOrdersHandler)
		r.Get("/reviews/{id}", GetReviewsHandler)
		r.Post("/reviews/{id}", PostReviewHandler)
		r.Get("/analytics/trending", GetTrendingHandler)
		r.Get("/analytics/top-rated", GetTopRatedHandler)
		r.Post("/activity", PostActivityHandler)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
