package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.Categories(Source(chi.URLParam(r, "source")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, cats)
}

func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	doms, err := h.catalog.Domains(Source(chi.URLParam(r, "source")), chi.URLParam(r, "categoryID"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownSource) || errors.Is(err, ErrCategoryNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	config.JSON(w, http.StatusOK, doms)
}
