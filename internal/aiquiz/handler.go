package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

var validate = validator.New()

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate quiz")
		config.JSON(w, HTTPStatus(err), NewErrorResponse(err))
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) GenerateFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.GenerateFeedback(r.Context(), req.Score, req.Total, req.Topic))
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, StatusResponse{Configured: h.service.Configured()})
}
