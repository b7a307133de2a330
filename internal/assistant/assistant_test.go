package assistant_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/neurobridge-lambda/internal/assistant"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roles = []assistant.Role{assistant.RoleCandidate, assistant.RoleManager, assistant.RoleGuest}

func TestReplyMatchesEveryKeyword(t *testing.T) {
	svc := assistant.NewService(func(int) int { return 0 })

	cases := []struct {
		message string
		topic   assistant.Topic
	}{
		{"Tell me about the quiz", assistant.TopicQuizzes},
		{"Is there a TEST?", assistant.TopicQuizzes},
		{"assessment", assistant.TopicQuizzes},
		{"login", assistant.TopicLogin},
		{"where do I sign in", assistant.TopicLogin},
		{"register", assistant.TopicLogin},
		{"dashboard", assistant.TopicDashboard},
		{"edit my profile", assistant.TopicDashboard},
		{"report", assistant.TopicReports},
		{"analytics", assistant.TopicReports},
		{"export to csv", assistant.TopicReports},
		{"accessibility", assistant.TopicAccessibility},
		{"neurodivergent", assistant.TopicAccessibility},
		{"inclusive", assistant.TopicAccessibility},
		{"resume", assistant.TopicResume},
		{"my cv", assistant.TopicResume},
		{"mental health", assistant.TopicWellness},
		{"support", assistant.TopicWellness},
		{"wellness", assistant.TopicWellness},
		{"badge", assistant.TopicBadges},
		{"achievement", assistant.TopicBadges},
		{"gamification", assistant.TopicBadges},
		{"help", assistant.TopicHelp},
		{"how", assistant.TopicHelp},
		{"start", assistant.TopicGettingStarted},
		{"begin", assistant.TopicGettingStarted},
		{"getting started", assistant.TopicGettingStarted},
		{"what's the weather", assistant.TopicFallback},
	}

	for _, tc := range cases {
		for _, role := range roles {
			t.Run(tc.message+"/"+string(role), func(t *testing.T) {
				got := svc.Reply(context.Background(), role, tc.message)
				assert.Equal(t, tc.topic, got.Topic)
				assert.Equal(t, role, got.Role)
				assert.NotEmpty(t, got.Reply)
			})
		}
	}
}

func TestReplyLadderOrder(t *testing.T) {
	svc := assistant.NewService(nil)

	cases := []struct {
		message string
		topic   assistant.Topic
	}{
		{"does the quiz feed my resume", assistant.TopicQuizzes},
		{"login to see my dashboard", assistant.TopicLogin},
		{"I need support with my badges", assistant.TopicWellness},
		{"how do I begin", assistant.TopicHelp},
		{"show me reports", assistant.TopicReports},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.topic, svc.Reply(context.Background(), assistant.RoleGuest, tc.message).Topic)
		})
	}
}

func TestReplyDependsOnRole(t *testing.T) {
	svc := assistant.NewService(nil)

	cases := []struct {
		message string
		want    map[assistant.Role]string
	}{
		{"quiz", map[assistant.Role]string{
			assistant.RoleCandidate: "Would you like to start your quiz now?",
			assistant.RoleManager:   "As a manager, you can view all candidate quiz results",
			assistant.RoleGuest:     "As a manager, you can view all candidate quiz results",
		}},
		{"dashboard", map[assistant.Role]string{
			assistant.RoleCandidate: "Your candidate dashboard is your personal hub!",
			assistant.RoleManager:   "Your manager dashboard provides comprehensive oversight",
			assistant.RoleGuest:     "Our dashboards are role-specific!",
		}},
		{"report", map[assistant.Role]string{
			assistant.RoleCandidate: "As a candidate, you can view your own performance",
			assistant.RoleManager:   "The Reports section is one of our key features for managers.",
			assistant.RoleGuest:     "As a candidate, you can view your own performance",
		}},
		{"getting started", map[assistant.Role]string{
			assistant.RoleCandidate: "Let's get you started!",
			assistant.RoleManager:   "Welcome aboard!",
			assistant.RoleGuest:     "Which role describes you best?",
		}},
		{"login", map[assistant.Role]string{
			assistant.RoleCandidate: "create an account or sign in",
			assistant.RoleManager:   "create an account or sign in",
			assistant.RoleGuest:     "create an account or sign in",
		}},
	}

	for _, tc := range cases {
		for role, want := range tc.want {
			t.Run(tc.message+"/"+string(role), func(t *testing.T) {
				assert.Contains(t, svc.Reply(context.Background(), role, tc.message).Reply, want)
			})
		}
	}
}

func TestReplyFallbackUsesPicker(t *testing.T) {
	var gotN int
	svc := assistant.NewService(func(n int) int { gotN = n; return 2 })

	got := svc.Reply(context.Background(), assistant.RoleCandidate, "lorem ipsum")
	assert.Equal(t, 3, gotN)
	assert.Equal(t, assistant.TopicFallback, got.Topic)
	assert.Contains(t, got.Reply, "accessibility options")
}

func TestWelcomePerRole(t *testing.T) {
	svc := assistant.NewService(nil)

	cases := map[assistant.Role]string{
		assistant.RoleCandidate: "Hello! Welcome to NEUROBRIDGE!",
		assistant.RoleManager:   "Hello, Manager!",
		assistant.RoleGuest:     "I'm your AI assistant",
	}
	for role, want := range cases {
		t.Run(string(role), func(t *testing.T) {
			got := svc.Welcome(role)
			assert.Equal(t, role, got.Role)
			assert.Contains(t, got.Message, want)
		})
	}
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, assistant.RoleCandidate, assistant.RoleOf("candidate"))
	assert.Equal(t, assistant.RoleManager, assistant.RoleOf("manager"))
	assert.Equal(t, assistant.RoleGuest, assistant.RoleOf(""))
	assert.Equal(t, assistant.RoleGuest, assistant.RoleOf("admin"))
}

func postMessage(t *testing.T, claims *auth.Claims, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := assistant.NewHandler(assistant.NewService(func(int) int { return 0 }))

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBufferString(body))
	if claims != nil {
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	assistant.Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestHandlerSendMessage(t *testing.T) {
	cases := []struct {
		name   string
		claims *auth.Claims
		role   assistant.Role
		reply  string
	}{
		{"Candidate", &auth.Claims{UserID: "u1", Role: "candidate"}, assistant.RoleCandidate, "Let's get you started!"},
		{"Manager", &auth.Claims{UserID: "u2", Role: "manager"}, assistant.RoleManager, "Welcome aboard!"},
		{"Guest", nil, assistant.RoleGuest, "Which role describes you best?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postMessage(t, tc.claims, `{"message":"Where do I start?"}`)
			require.Equal(t, http.StatusOK, rec.Code)

			var got assistant.MessageResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.role, got.Role)
			assert.Equal(t, assistant.TopicGettingStarted, got.Topic)
			assert.Contains(t, got.Reply, tc.reply)
		})
	}
}

func TestHandlerSendMessageRejectsBadInput(t *testing.T) {
	for name, body := range map[string]string{
		"Blank":     `{"message":"   "}`,
		"Missing":   `{}`,
		"Malformed": `{"message":`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postMessage(t, nil, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlerWelcome(t *testing.T) {
	h := assistant.NewHandler(assistant.NewService(nil))
	req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
	req = req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{UserID: "u2", Role: "manager"}))
	rec := httptest.NewRecorder()

	assistant.Routes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got assistant.WelcomeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, assistant.RoleManager, got.Role)
	assert.Contains(t, got.Message, "Hello, Manager!")
}
