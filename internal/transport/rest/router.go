package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgeskills/edge-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Attributes *AttributeHandler
	Activities *ActivityHandler
	Entries    *EntryHandler
	Health     *HealthHandler
	Global     middleware.Middleware
}

// NewRouter builds the HTTP routing table. Global middleware wraps every
// route, health probes included, so even probes carry request ids.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(deps.Global)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/attributes", deps.Attributes.List)
		r.Get("/attributes/{code}", deps.Attributes.Get)

		r.Get("/activities/all", deps.Activities.ListAll)
		r.Get("/activities", deps.Activities.List)
		r.Get("/activities/{id}", deps.Activities.Get)
		r.Get("/activities/{id}/attributes", deps.Activities.Attributes)
		r.Post("/activities/{id}/join", deps.Activities.Join)
		r.Post("/activities/{id}/leave", deps.Activities.Leave)

		r.Get("/entries", deps.Entries.List)
		r.Get("/entries/{id}", deps.Entries.Get)
		r.Post("/entries", deps.Entries.Save)
		r.Delete("/entries/{id}", deps.Entries.Delete)
		r.Post("/entries/{id}/submit", deps.Entries.Submit)
	})

	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	return r
}
