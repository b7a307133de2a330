package candidate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

var validate = validator.New()

type Handler struct {
	service CandidateService
}

func NewHandler(s CandidateService) *Handler {
	return &Handler{service: s}
}

func userFromClaims(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromClaims(w, r)
	if !ok {
		return
	}

	d, err := h.service.GetDetails(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrDetailsNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, d)
}

func (h *Handler) SaveMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userFromClaims(w, r)
	if !ok {
		return
	}

	var dto SaveDetailsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.service.SaveDetails(r.Context(), userID, dto)
	if err != nil {
		var incomplete *StepIncompleteError
		if errors.As(err, &incomplete) {
			config.JSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": err.Error(),
				"step":  incomplete.Step,
			})
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, d)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromClaims(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) GetAccessibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromClaims(w, r)
	if !ok {
		return
	}

	prefs, err := h.service.GetAccessibility(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, prefs)
}

func (h *Handler) UpdateAccessibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromClaims(w, r)
	if !ok {
		return
	}

	var prefs AccessibilityPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.service.UpdateAccessibility(r.Context(), userID, prefs)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, saved)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, candidates)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "candidateID"))
	if err != nil {
		http.Error(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	c, err := h.service.GetCandidate(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, c)
}
