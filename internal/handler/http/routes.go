package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/sales", h.submitSale)
			r.Get("/sales", h.listSales)
			r.Post("/sales/{ref}/payments", h.addPayment)

			r.Get("/products", h.listProducts)
			r.Get("/clients", h.listClients)
		})
	})

	return router
}
