package aiquiz

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/neurobridge-lambda/internal/llm"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HTTPStatus maps a generation failure to the status a handler should send.
func HTTPStatus(err error) int {
	var malformed *MalformedQuestionError
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, llm.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrMalformedJSON), errors.Is(err, ErrNoQuestions), errors.As(err, &malformed):
		return http.StatusBadGateway
	case llm.KindOf(err) != "":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error(), Kind: string(llm.KindOf(err))}
	var malformed *MalformedQuestionError
	if errors.Is(err, ErrMalformedJSON) || errors.Is(err, ErrNoQuestions) || errors.As(err, &malformed) {
		resp.Kind = "malformed_response"
	}
	return resp
}
