package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/status", h.Status)
	r.With(auth.RequireRole(string(user.RoleManager))).Post("/", h.GenerateQuiz)
	r.Post("/feedback", h.GenerateFeedback)
	return r
}
