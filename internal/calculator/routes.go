package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, api *API) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/evaluate", api.Evaluate)
		r.Get("/history", api.History)
		r.Delete("/history", api.Clear)
		r.Post("/undo", api.Undo)
		r.Post("/redo", api.Redo)
	})
}
