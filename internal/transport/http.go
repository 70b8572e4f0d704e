package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"orderdesk/internal/handler"
	"orderdesk/internal/store"
)

func NewRouter(st *store.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	orders := handler.NewOrderHandler(st)
	catalog := handler.NewCatalogHandler(st)

	r.Route("/api", func(r chi.Router) {
		catalog.RegisterRoutes(r)
		orders.RegisterRoutes(r)
	})

	return r
}
