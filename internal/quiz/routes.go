package quiz

import (
	"github.com/go-chi/chi/v5"
)

func SessionRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.StartSession)
	r.Get("/{id}", h.GetSession)
	r.Post("/{id}/category", h.SelectCategory)
	r.Post("/{id}/domain", h.SelectDomain)
	r.Post("/{id}/answers", h.Answer)
	r.Post("/{id}/back", h.Back)
	r.Post("/{id}/retake", h.Retake)
	return r
}

func ResultRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListResults)
	r.Get("/{id}", h.GetResult)
	return r
}
