package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/trungle-dev/renty/internal/http/auth"
	"github.com/trungle-dev/renty/internal/http/billing"
	"github.com/trungle-dev/renty/internal/http/contract"
	"github.com/trungle-dev/renty/internal/http/importcsv"
	"github.com/trungle-dev/renty/internal/http/property"
)

func New(
	authSecret string,
	propertyV1 *property.Handler,
	contractsV1 *contract.Handler,
	invoicesV1 *billing.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/buildings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			propertyV1.BuildingRoutes(r)
		})

		r.Route("/floors", propertyV1.FloorRoutes)

		r.Route("/apartments", func(r chi.Router) {
			propertyV1.ApartmentRoutes(r)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			contractsV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
