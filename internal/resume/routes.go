package resume

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/me", h.Generate)
	r.Get("/me", h.Get)
	r.Get("/me/download", h.Download)
	return r
}
