package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
)

var (
	ErrInvalidTransition    = errors.New("transition not allowed in current state")
	ErrGenerationInProgress = errors.New("quiz generation in progress")
	ErrSessionCompleted     = errors.New("quiz session already completed")
	ErrInvalidAnswer        = errors.New("answer must be between 0 and 3")
)

// Session is one pass through the quiz flow for one user and one source.
// The transition methods only mutate the receiver; storing it is the
// caller's job.
type Session struct {
	ID         uuid.UUID                `json:"id"`
	UserID     uuid.UUID                `json:"user_id"`
	Source     catalog.Source           `json:"source"`
	State      State                    `json:"state"`
	CategoryID string                   `json:"category_id,omitempty"`
	DomainID   string                   `json:"domain_id,omitempty"`
	DomainName string                   `json:"domain_name,omitempty"`
	Quiz       *aiquiz.QuizData         `json:"quiz,omitempty"`
	Index      int                      `json:"index"`
	Answers    []int                    `json:"answers"`
	Result     *aiquiz.EvaluationResult `json:"result,omitempty"`
	ResultID   *uuid.UUID               `json:"result_id,omitempty"`
	Error      string                   `json:"error,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

func NewSession(userID uuid.UUID, source catalog.Source) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Source:    source,
		State:     StateCategorySelection,
		Answers:   []int{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) expect(states ...State) error {
	if s.State == StateGenerating {
		return ErrGenerationInProgress
	}
	for _, st := range states {
		if s.State == st {
			return nil
		}
	}
	if s.State == StateResults {
		return ErrSessionCompleted
	}
	return ErrInvalidTransition
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

func (s *Session) SelectCategory(categoryID string) error {
	if err := s.expect(StateCategorySelection); err != nil {
		return err
	}
	s.CategoryID = categoryID
	s.Error = ""
	s.State = StateDomainSelection
	s.touch()
	return nil
}

func (s *Session) BeginGeneration(domain catalog.Domain) error {
	if err := s.expect(StateDomainSelection); err != nil {
		return err
	}
	s.DomainID = domain.ID
	s.DomainName = domain.Name
	s.Error = ""
	s.State = StateGenerating
	s.touch()
	return nil
}

func (s *Session) CompleteGeneration(quiz *aiquiz.QuizData) error {
	if s.State != StateGenerating {
		return ErrInvalidTransition
	}
	if err := aiquiz.ValidateQuiz(quiz); err != nil {
		return err
	}
	s.Quiz = quiz
	s.Index = 0
	s.Answers = []int{}
	s.State = StateQuiz
	s.touch()
	return nil
}

// FailGeneration returns the session to domain selection with the domain
// cleared so the user can pick again.
func (s *Session) FailGeneration(cause error) error {
	if s.State != StateGenerating {
		return ErrInvalidTransition
	}
	s.DomainID = ""
	s.DomainName = ""
	s.Error = cause.Error()
	s.State = StateDomainSelection
	s.touch()
	return nil
}

// Answer records the choice for the current question. It reports true when
// that was the last question, at which point Result is set.
func (s *Session) Answer(choice int) (bool, error) {
	if err := s.expect(StateQuiz); err != nil {
		return false, err
	}
	if choice < 0 || choice > 3 {
		return false, ErrInvalidAnswer
	}

	s.Answers = append(s.Answers, choice)
	s.Index++
	s.touch()

	if s.Index < len(s.Quiz.Questions) {
		return false, nil
	}

	result, err := aiquiz.Evaluate(s.Quiz.Questions, s.Answers)
	if err != nil {
		return false, err
	}
	s.Result = result
	s.State = StateResults
	return true, nil
}

func (s *Session) Back() error {
	if err := s.expect(StateDomainSelection); err != nil {
		return err
	}
	s.CategoryID = ""
	s.Error = ""
	s.State = StateCategorySelection
	s.touch()
	return nil
}

// GenerationTimeout bounds how long a session may sit in generating. Past
// it the generation is treated as abandoned.
const GenerationTimeout = 2 * time.Minute

// GenerationStale reports whether the session has been generating for longer
// than GenerationTimeout at now.
func (s *Session) GenerationStale(now time.Time) bool {
	return s.State == StateGenerating && now.Sub(s.UpdatedAt) > GenerationTimeout
}

func (s *Session) Retake() error {
	if s.State == StateGenerating && !s.GenerationStale(time.Now()) {
		return ErrGenerationInProgress
	}
	s.CategoryID = ""
	s.DomainID = ""
	s.DomainName = ""
	s.Quiz = nil
	s.Index = 0
	s.Answers = []int{}
	s.Result = nil
	s.ResultID = nil
	s.Error = ""
	s.State = StateCategorySelection
	s.touch()
	return nil
}

func (s *Session) Clone() *Session {
	cp := *s
	cp.Answers = append([]int{}, s.Answers...)
	if s.Quiz != nil {
		q := *s.Quiz
		q.Questions = append([]aiquiz.QuizQuestion(nil), s.Quiz.Questions...)
		cp.Quiz = &q
	}
	if s.Result != nil {
		r := *s.Result
		r.CorrectAnswers = append([]bool(nil), s.Result.CorrectAnswers...)
		cp.Result = &r
	}
	if s.ResultID != nil {
		id := *s.ResultID
		cp.ResultID = &id
	}
	return &cp
}
