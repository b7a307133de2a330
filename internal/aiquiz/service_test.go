package aiquiz_test

import (
	"context"
	"strings"
	"testing"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply      string
	err        error
	configured bool
	requests   []llm.Request
}

func (f *fakeClient) Complete(_ context.Context, req llm.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func (f *fakeClient) Configured() bool { return f.configured }

func TestGenerateQuiz(t *testing.T) {
	client := &fakeClient{reply: "```json\n" + validQuizJSON + "\n```", configured: true}
	svc := aiquiz.NewService(client)

	quiz, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Topic: "go"})
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 3000, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
}

func TestGenerateQuizFillsMissingTitle(t *testing.T) {
	raw := `{"questions":[{"question":"q","options":["a","b","c","d"],"correctAnswer":1}]}`
	svc := aiquiz.NewService(&fakeClient{reply: raw, configured: true})

	quiz, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Topic: "docker", Difficulty: aiquiz.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, "Docker Quiz - Easy Level", quiz.Title)
}

func TestGenerateQuizFailuresYieldNoQuiz(t *testing.T) {
	cases := []struct {
		name   string
		client *fakeClient
		target error
	}{
		{"GatewayError", &fakeClient{err: llm.Classify(429, "")}, llm.ErrRateLimited},
		{"SyntaxError", &fakeClient{reply: "{oops"}, aiquiz.ErrMalformedJSON},
		{"NoQuestions", &fakeClient{reply: `{"questions":[]}`}, aiquiz.ErrNoQuestions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quiz, err := aiquiz.NewService(tc.client).GenerateQuiz(context.Background(), aiquiz.QuizRequest{Topic: "go"})
			assert.Nil(t, quiz)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestGenerateFeedback(t *testing.T) {
	t.Run("FromModel", func(t *testing.T) {
		client := &fakeClient{reply: "  Well done! Keep going.  ", configured: true}
		fb := aiquiz.NewService(client).GenerateFeedback(context.Background(), 8, 10, "SQL")

		assert.Equal(t, "Well done! Keep going.", fb.Text)
		assert.False(t, fb.Fallback)
		assert.Equal(t, 80, fb.Percentage)
		require.Len(t, client.requests, 1)
		assert.Equal(t, 0.8, client.requests[0].Temperature)
		assert.Equal(t, 300, client.requests[0].MaxTokens)
	})

	t.Run("FallbackHighBand", func(t *testing.T) {
		client := &fakeClient{err: llm.Classify(401, "")}
		fb := aiquiz.NewService(client).GenerateFeedback(context.Background(), 19, 20, "Python")

		assert.True(t, fb.Fallback)
		assert.Equal(t, 95, fb.Percentage)
		assert.True(t, strings.HasPrefix(fb.Text, "Outstanding work on this Python quiz!"))
	})

	t.Run("FallbackLowBand", func(t *testing.T) {
		client := &fakeClient{err: llm.Classify(500, "")}
		fb := aiquiz.NewService(client).GenerateFeedback(context.Background(), 11, 20, "Python")

		assert.True(t, fb.Fallback)
		assert.Equal(t, 55, fb.Percentage)
		assert.Contains(t, fb.Text, "This is a learning opportunity")
	})

	t.Run("BlankModelReply", func(t *testing.T) {
		fb := aiquiz.NewService(&fakeClient{reply: "   "}).GenerateFeedback(context.Background(), 7, 10, "Java")
		assert.True(t, fb.Fallback)
		assert.Contains(t, fb.Text, "Good effort on the Java quiz!")
	})
}

func TestFallbackFeedbackBands(t *testing.T) {
	cases := []struct {
		score  int
		prefix string
	}{
		{10, "Outstanding work"},
		{9, "Outstanding work"},
		{8, "Great job!"},
		{7, "Good effort"},
		{6, "You completed the"},
		{5, "You scored 5/10"},
	}
	for _, tc := range cases {
		text := aiquiz.FallbackFeedback(tc.score, 10, "Git")
		assert.True(t, strings.HasPrefix(text, tc.prefix), "score %d: %s", tc.score, text)
	}
}
