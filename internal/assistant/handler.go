package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

var validate = validator.New()

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// roleFromRequest reads the caller's role from the token claims. Requests
// without claims are answered as a guest.
func roleFromRequest(r *http.Request) Role {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return RoleGuest
	}
	return RoleOf(claims.Role)
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Welcome(roleFromRequest(r)))
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var dto MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dto.Message = strings.TrimSpace(dto.Message)
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Reply(r.Context(), roleFromRequest(r), dto.Message))
}
