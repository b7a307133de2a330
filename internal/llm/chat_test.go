package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/neurobridge-lambda/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *llm.ChatClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return llm.NewChatClient(llm.Config{
		BaseURL: srv.URL,
		APIKey:  "sk-test",
		Model:   "test/model",
		Referer: "https://neurobridge.test",
	})
}

func sampleRequest() llm.Request {
	return llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "system"},
			{Role: llm.RoleUser, Content: "user"},
		},
		Temperature: 0.7,
		MaxTokens:   3000,
	}
}

func TestChatClientSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "NeuroBridge Quiz System", r.Header.Get("X-Title"))
		assert.Equal(t, "https://neurobridge.test", r.Header.Get("HTTP-Referer"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test/model", body["model"])
		assert.Equal(t, 0.7, body["temperature"])
		assert.Equal(t, float64(3000), body["max_tokens"])
		assert.Len(t, body["messages"], 2)

		w.Write([]byte(`{"choices":[{"message":{"content":"{\"title\":\"ok\"}"}}]}`))
	})

	out, err := client.Complete(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, `{"title":"ok"}`, out)
}

func TestChatClientStatusClassification(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
		kind     llm.ErrorKind
		message  string
	}{
		{"Unauthorized", http.StatusUnauthorized, `{}`, llm.ErrUnauthorized, llm.KindUnauthorized, "Invalid API key"},
		{"PaymentRequired", http.StatusPaymentRequired, `{}`, llm.ErrBilling, llm.KindBilling, "Insufficient credits"},
		{"Forbidden", http.StatusForbidden, `{}`, llm.ErrBilling, llm.KindBilling, "Insufficient credits"},
		{"RateLimited", http.StatusTooManyRequests, `{}`, llm.ErrRateLimited, llm.KindRateLimited, "Rate limit exceeded"},
		{"ServerMessage", http.StatusBadRequest, `{"error":{"message":"model not found"}}`, llm.ErrRequestFailed, llm.KindRequestFailed, "model not found"},
		{"NoServerMessage", http.StatusBadGateway, `oops`, llm.ErrRequestFailed, llm.KindRequestFailed, "API request failed: 502"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			out, err := client.Complete(context.Background(), sampleRequest())
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.Is(err, tc.sentinel), "expected %v, got %v", tc.sentinel, err)
			assert.Equal(t, tc.kind, llm.KindOf(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestChatClientRateLimitDiffersFromAuth(t *testing.T) {
	rateLimited := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	unauthorized := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, rateErr := rateLimited.Complete(context.Background(), sampleRequest())
	_, authErr := unauthorized.Complete(context.Background(), sampleRequest())

	require.Error(t, rateErr)
	require.Error(t, authErr)
	assert.NotEqual(t, rateErr.Error(), authErr.Error())
	assert.ErrorIs(t, rateErr, llm.ErrRateLimited)
	assert.ErrorIs(t, authErr, llm.ErrUnauthorized)
	assert.NotErrorIs(t, rateErr, llm.ErrUnauthorized)
}

func TestChatClientEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	})

	_, err := client.Complete(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestChatClientNotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := llm.NewChatClient(llm.Config{BaseURL: srv.URL})
	assert.False(t, client.Configured())

	_, err := client.Complete(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.False(t, called, "no request should be sent without a credential")
}
