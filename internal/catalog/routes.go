package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{source}/categories", h.ListCategories)
	r.Get("/{source}/categories/{categoryID}/domains", h.ListDomains)
	return r
}
