package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotConfigured = errors.New("llm: api credential not configured")
	ErrUnauthorized  = errors.New("llm: unauthorized")
	ErrBilling       = errors.New("llm: insufficient credits")
	ErrRateLimited   = errors.New("llm: rate limited")
	ErrRequestFailed = errors.New("llm: request failed")
	ErrEmptyResponse = errors.New("llm: empty response")
)

type ErrorKind string

const (
	KindNotConfigured ErrorKind = "not_configured"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindBilling       ErrorKind = "billing"
	KindRateLimited   ErrorKind = "rate_limited"
	KindRequestFailed ErrorKind = "request_failed"
	KindEmptyResponse ErrorKind = "empty_response"
)

var kindSentinels = map[ErrorKind]error{
	KindNotConfigured: ErrNotConfigured,
	KindUnauthorized:  ErrUnauthorized,
	KindBilling:       ErrBilling,
	KindRateLimited:   ErrRateLimited,
	KindRequestFailed: ErrRequestFailed,
	KindEmptyResponse: ErrEmptyResponse,
}

// GatewayError is a classified gateway failure. Message is what a user
// should read; Hint says how to fix it.
type GatewayError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Hint    string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Hint)
	}
	return e.Message
}

func (e *GatewayError) Unwrap() []error {
	errs := []error{kindSentinels[e.Kind]}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func notConfigured(provider string) *GatewayError {
	return &GatewayError{
		Kind:    KindNotConfigured,
		Message: fmt.Sprintf("%s API key is not configured", provider),
		Hint:    "Set the API key environment variable and restart the service",
	}
}

func emptyResponse() *GatewayError {
	return &GatewayError{
		Kind:    KindEmptyResponse,
		Status:  http.StatusOK,
		Message: "Empty response from the model",
		Hint:    "Try again or choose a different topic",
	}
}

// Classify maps a non-success HTTP status to a GatewayError. serverMessage
// is the provider's own error text, used only for unclassified statuses.
func Classify(status int, serverMessage string) *GatewayError {
	switch status {
	case http.StatusUnauthorized:
		return &GatewayError{
			Kind:    KindUnauthorized,
			Status:  status,
			Message: "Invalid API key",
			Hint:    "Check the key configured for the LLM provider",
		}
	case http.StatusPaymentRequired, http.StatusForbidden:
		return &GatewayError{
			Kind:    KindBilling,
			Status:  status,
			Message: "Insufficient credits",
			Hint:    "Add credits to the LLM provider account",
		}
	case http.StatusTooManyRequests:
		return &GatewayError{
			Kind:    KindRateLimited,
			Status:  status,
			Message: "Rate limit exceeded",
			Hint:    "Wait 60 seconds and try again",
		}
	}

	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("API request failed: %d", status)
	}
	return &GatewayError{
		Kind:    KindRequestFailed,
		Status:  status,
		Message: msg,
	}
}

// KindOf reports the classification of err, or "" when err is not a
// gateway failure.
func KindOf(err error) ErrorKind {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return ""
}
