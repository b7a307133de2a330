package quiz_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type recordedNotification struct {
	userID uuid.UUID
	n      notify.Notification
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, n notify.Notification) error {
	f.sent = append(f.sent, recordedNotification{userID, n})
	return nil
}

func seedResult(t *testing.T, repo *memRepo, userID uuid.UUID) *quiz.QuizResult {
	t.Helper()
	res := &quiz.QuizResult{
		ID:             uuid.New(),
		UserID:         userID,
		Score:          9,
		TotalQuestions: 10,
		Percentage:     90,
		Answers:        datatypes.NewJSONType([]int{}),
		FeedbackStatus: quiz.FeedbackPending,
		CompletedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(res))
	return res
}

func TestFeedbackWorker(t *testing.T) {
	cases := []struct {
		name     string
		feedback aiquiz.Feedback
		status   quiz.FeedbackStatus
	}{
		{"ModelText", aiquiz.Feedback{Text: "Nice work.", Percentage: 90}, quiz.FeedbackReady},
		{"Fallback", aiquiz.Feedback{Text: "Outstanding work", Percentage: 90, Fallback: true}, quiz.FeedbackFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo()
			notifier := &fakeNotifier{}
			userID := uuid.New()
			res := seedResult(t, repo, userID)

			w := quiz.NewFeedbackWorker(repo, &fakeAI{feedback: tc.feedback}, notifier)
			body, err := json.Marshal(quiz.FeedbackJob{ResultID: res.ID, UserID: userID, Score: 9, Total: 10, Topic: "Go"})
			require.NoError(t, err)
			require.NoError(t, w.Handle(context.Background(), body))

			stored := repo.results[res.ID]
			require.NotNil(t, stored.Feedback)
			assert.Equal(t, tc.feedback.Text, *stored.Feedback)
			assert.Equal(t, tc.status, stored.FeedbackStatus)

			require.Len(t, notifier.sent, 1)
			assert.Equal(t, userID, notifier.sent[0].userID)
			assert.Equal(t, quiz.NotificationFeedbackReady, notifier.sent[0].n.Type)
			assert.Equal(t, "You scored 9/10 (90%)", notifier.sent[0].n.Description)
		})
	}
}

func TestFeedbackWorkerRejectsGarbage(t *testing.T) {
	w := quiz.NewFeedbackWorker(newMemRepo(), &fakeAI{}, nil)
	assert.Error(t, w.Handle(context.Background(), []byte("{")))
}

func TestFeedbackWorkerStorageError(t *testing.T) {
	w := quiz.NewFeedbackWorker(newMemRepo(), &fakeAI{feedback: aiquiz.Feedback{Text: "x"}}, nil)
	body, _ := json.Marshal(quiz.FeedbackJob{ResultID: uuid.New()})
	assert.Error(t, w.Handle(context.Background(), body))
}
