package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/neurobridge-lambda/internal/assistant"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Setenv("JWT_SECRET", "router-test-secret")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173")
	auth.Init()
	return router.New(router.RouterConfig{})
}

func serve(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(newRouter(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	h := newRouter(t)

	for _, path := range []string{"/users/me", "/candidates", "/reports", "/analytics/dashboard", "/resumes/me", "/quiz-results"} {
		rec := serve(h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestManagerRoutesRejectCandidates(t *testing.T) {
	h := newRouter(t)
	token, err := auth.GenerateJWT("11111111-1111-1111-1111-111111111111", "candidate", time.Hour)
	assert.NoError(t, err)

	for _, path := range []string{"/candidates", "/reports", "/reports/export.csv", "/analytics/dashboard"} {
		rec := serve(h, http.MethodGet, path, token)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	rec := serve(h, http.MethodPut, "/candidates/22222222-2222-2222-2222-222222222222/remark", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCandidateRoutesRejectManagers(t *testing.T) {
	h := newRouter(t)
	token, err := auth.GenerateJWT("11111111-1111-1111-1111-111111111111", "manager", time.Hour)
	assert.NoError(t, err)

	for _, path := range []string{"/candidates/me", "/resumes/me"} {
		rec := serve(h, http.MethodGet, path, token)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestAssistantAnswersGuestsAndMembers(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")
	auth.Init()
	h := router.New(router.RouterConfig{AssistantHandler: assistant.NewHandler(assistant.NewService(nil))})

	managerToken, err := auth.GenerateJWT("11111111-1111-1111-1111-111111111111", "manager", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
		role  assistant.Role
	}{
		{"Guest", "", assistant.RoleGuest},
		{"Manager", managerToken, assistant.RoleManager},
		{"InvalidTokenFallsBackToGuest", "not-a-jwt", assistant.RoleGuest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/assistant/messages", strings.NewReader(`{"message":"dashboard"}`))
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got assistant.MessageResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.role, got.Role)
			assert.Equal(t, assistant.TopicDashboard, got.Topic)
		})
	}
}
