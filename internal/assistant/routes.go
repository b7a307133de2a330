package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/welcome", h.Welcome)
	r.Post("/messages", h.SendMessage)
	return r
}
