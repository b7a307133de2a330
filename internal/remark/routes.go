package remark

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

// Register adds the remark routes to the /candidates router.
func Register(r chi.Router, h *Handler) {
	r.With(auth.RequireRole(string(user.RoleManager))).Put("/{candidateID}/remark", h.Upsert)
	r.Get("/{candidateID}/remarks", h.List)
}
