package quiz

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
)

type StartSessionDTO struct {
	Source catalog.Source `json:"source" validate:"required,oneof=bank generated"`
}

type SelectCategoryDTO struct {
	CategoryID string `json:"category_id" validate:"required"`
}

type SelectDomainDTO struct {
	DomainID      string            `json:"domain_id" validate:"required"`
	Difficulty    aiquiz.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionCount int               `json:"question_count" validate:"omitempty,min=1,max=20"`
}

type AnswerDTO struct {
	Answer *int `json:"answer" validate:"required,min=0,max=3"`
}

type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SessionView is what the client sees. Correct answers stay hidden until
// the session reaches results.
type SessionView struct {
	ID              uuid.UUID                `json:"id"`
	Source          catalog.Source           `json:"source"`
	State           State                    `json:"state"`
	CategoryID      string                   `json:"category_id,omitempty"`
	DomainID        string                   `json:"domain_id,omitempty"`
	DomainName      string                   `json:"domain_name,omitempty"`
	Title           string                   `json:"title,omitempty"`
	Index           int                      `json:"index"`
	TotalQuestions  int                      `json:"total_questions"`
	CurrentQuestion *QuestionView            `json:"current_question,omitempty"`
	Answers         []int                    `json:"answers"`
	Result          *aiquiz.EvaluationResult `json:"result,omitempty"`
	Review          []aiquiz.QuizQuestion    `json:"review,omitempty"`
	ResultID        *uuid.UUID               `json:"result_id,omitempty"`
	Error           string                   `json:"error,omitempty"`
}

type GenerationErrorResponse struct {
	aiquiz.ErrorResponse
	Session SessionView `json:"session"`
}

func ToView(s *Session) SessionView {
	v := SessionView{
		ID:         s.ID,
		Source:     s.Source,
		State:      s.State,
		CategoryID: s.CategoryID,
		DomainID:   s.DomainID,
		DomainName: s.DomainName,
		Index:      s.Index,
		Answers:    s.Answers,
		Result:     s.Result,
		ResultID:   s.ResultID,
		Error:      s.Error,
	}
	if v.Answers == nil {
		v.Answers = []int{}
	}
	if s.Quiz == nil {
		return v
	}

	v.Title = s.Quiz.Title
	v.TotalQuestions = len(s.Quiz.Questions)
	switch s.State {
	case StateQuiz:
		q := s.Quiz.Questions[s.Index]
		v.CurrentQuestion = &QuestionView{Question: q.Question, Options: q.Options}
	case StateResults:
		v.Review = s.Quiz.Questions
	}
	return v
}
