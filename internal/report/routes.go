package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/summary", h.Summary)
	r.Get("/export.csv", h.Export)
	r.Post("/{candidateID}/share", h.Share)
	return r
}
