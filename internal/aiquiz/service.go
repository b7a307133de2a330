package aiquiz

import (
	"context"
	"strings"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/llm"
	"github.com/sirupsen/logrus"
)

const (
	quizTemperature     = 0.7
	quizMaxTokens       = 3000
	feedbackTemperature = 0.8
	feedbackMaxTokens   = 300
)

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizData, error)
	GenerateFeedback(ctx context.Context, score, total int, topic string) Feedback
	Configured() bool
}

type service struct {
	client llm.Client
}

func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Configured() bool {
	return s.client != nil && s.client.Configured()
}

// GenerateQuiz returns either a fully validated quiz or a nil quiz and the
// reason generation failed.
func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizData, error) {
	req = req.Normalize()
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"topic":      req.Topic,
		"difficulty": req.Difficulty,
		"count":      req.QuestionCount,
	})

	if s.client == nil {
		return nil, llm.ErrNotConfigured
	}

	system, user := BuildQuizPrompt(req)
	log.Info("[AIQUIZ] Generating quiz")

	raw, err := s.client.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Temperature: quizTemperature,
		MaxTokens:   quizMaxTokens,
	})
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Quiz generation request failed")
		return nil, err
	}

	quiz, err := ParseQuiz(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Model returned an unusable quiz:\n%s", raw)
		return nil, err
	}

	if quiz.Title == "" {
		quiz.Title = QuizTitle(req.Topic, req.Difficulty)
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(quiz.Questions))
	return quiz, nil
}

// GenerateFeedback always returns text. Fallback is set when the text came
// from the canned ladder instead of the model.
func (s *service) GenerateFeedback(ctx context.Context, score, total int, topic string) Feedback {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"topic": topic,
		"score": score,
		"total": total,
	})

	fb := Feedback{Percentage: Percentage(score, total)}

	if s.client == nil || total <= 0 {
		fb.Text = FallbackFeedback(score, total, topic)
		fb.Fallback = true
		return fb
	}

	system, user := BuildFeedbackPrompt(score, total, topic)
	text, err := s.client.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Temperature: feedbackTemperature,
		MaxTokens:   feedbackMaxTokens,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		log.WithError(err).Warn("[AIQUIZ] Feedback generation failed, using fallback")
		fb.Text = FallbackFeedback(score, total, topic)
		fb.Fallback = true
		return fb
	}

	fb.Text = strings.TrimSpace(text)
	return fb
}
