package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

var validate = validator.New()

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func currentUser(w http.ResponseWriter, r *http.Request) (*auth.Claims, uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return nil, uuid.Nil, false
	}
	return claims, id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrDomainNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrUnknownSource), errors.Is(err, ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrGenerationInProgress),
		errors.Is(err, ErrSessionCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var dto StartSessionDTO
	if !decode(w, r, &dto) {
		return
	}

	sess, err := h.service.Start(r.Context(), userID, dto.Source)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, ToView(sess))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sess, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

func (h *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var dto SelectCategoryDTO
	if !decode(w, r, &dto) {
		return
	}

	sess, err := h.service.SelectCategory(r.Context(), userID, id, dto)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

// SelectDomain blocks until the quiz is ready. A failed generation answers
// with the gateway classification and the session, now back in domain
// selection.
func (h *Handler) SelectDomain(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var dto SelectDomainDTO
	if !decode(w, r, &dto) {
		return
	}

	sess, err := h.service.SelectDomain(r.Context(), userID, id, dto)
	if err != nil {
		if sess != nil && sess.State == StateDomainSelection && sess.Error != "" {
			log.WithError(err).Warn("Quiz generation failed")
			config.JSON(w, aiquiz.HTTPStatus(err), GenerationErrorResponse{
				ErrorResponse: aiquiz.NewErrorResponse(err),
				Session:       ToView(sess),
			})
			return
		}
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var dto AnswerDTO
	if !decode(w, r, &dto) {
		return
	}

	sess, err := h.service.Answer(r.Context(), userID, id, *dto.Answer)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sess, err := h.service.Back(r.Context(), userID, id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

func (h *Handler) Retake(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sess, err := h.service.Retake(r.Context(), userID, id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, ToView(sess))
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	results, err := h.service.ListResults(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	claims, userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrResultNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if res.UserID != userID && claims.Role != string(user.RoleManager) {
		http.Error(w, ErrResultNotFound.Error(), http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, res)
}
