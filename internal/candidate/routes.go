package candidate

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

// Routes returns the /candidates router. Other packages may register more
// routes under /{candidateID} on it before it is mounted.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(user.RoleCandidate)))
		r.Get("/me", h.GetMine)
		r.Put("/me", h.SaveMine)
		r.Get("/me/progress", h.Progress)
		r.Get("/me/accessibility", h.GetAccessibility)
		r.Put("/me/accessibility", h.UpdateAccessibility)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(user.RoleManager)))
		r.Get("/", h.List)
		r.Get("/{candidateID}", h.Get)
	})
	return r
}
