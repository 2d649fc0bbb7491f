package devserver

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
)

// NewRouter creates the HTTP router of the dev service.
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()
	set := metrics.NewSet()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(MeterRequests(set))
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(store)

	r.Route("/persons", func(r chi.Router) {
		r.Get("/", h.ListPersons)
		r.Post("/", h.CreatePerson)
		r.Get("/{id}", h.GetPerson)
		r.Put("/{id}", h.ReplacePerson)
		r.Delete("/{id}", h.DeletePerson)
	})

	r.Get("/health", h.Health)
	r.Get("/metrics", metricsHandler(set))

	return r
}
