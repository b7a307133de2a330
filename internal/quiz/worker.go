package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
)

const NotificationFeedbackReady = "quiz.feedback_ready"

// FeedbackWorker consumes quiz.feedback jobs. Feedback generation never
// fails, so the only errors returned are storage errors.
type FeedbackWorker struct {
	repo     QuizRepository
	ai       aiquiz.Service
	notifier notify.Notifier
}

func NewFeedbackWorker(repo QuizRepository, ai aiquiz.Service, notifier notify.Notifier) *FeedbackWorker {
	return &FeedbackWorker{repo: repo, ai: ai, notifier: notifier}
}

func (w *FeedbackWorker) Handle(ctx context.Context, body []byte) error {
	var job FeedbackJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("decode feedback job: %w", err)
	}
	log := config.WithContext(ctx).WithField("result_id", job.ResultID)

	fb := w.ai.GenerateFeedback(ctx, job.Score, job.Total, job.Topic)
	status := FeedbackReady
	if fb.Fallback {
		status = FeedbackFallback
	}

	if err := w.repo.UpdateFeedback(job.ResultID, fb.Text, status); err != nil {
		log.WithError(err).Error("Failed to store feedback")
		return err
	}
	log.WithField("status", status).Info("Feedback stored")

	if w.notifier == nil {
		return nil
	}
	n := notify.Notification{
		Type:        NotificationFeedbackReady,
		Title:       "Quiz Completed!",
		Description: fmt.Sprintf("You scored %d/%d (%d%%)", job.Score, job.Total, fb.Percentage),
		Variant:     notify.VariantDefault,
		Data: map[string]any{
			"result_id":  job.ResultID,
			"percentage": fb.Percentage,
			"feedback":   fb.Text,
		},
	}
	if err := w.notifier.Notify(ctx, job.UserID, n); err != nil {
		log.WithError(err).Warn("Failed to notify user about feedback")
	}
	return nil
}
