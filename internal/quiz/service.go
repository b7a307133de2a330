package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/queue"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var ErrResultNotFound = errors.New("quiz result not found")

// Catalog is the part of the catalog the quiz flow reads.
type Catalog interface {
	Category(s catalog.Source, categoryID string) (catalog.Category, error)
	Domain(s catalog.Source, domainID string) (catalog.Domain, error)
	BankQuiz(domainID string) (*aiquiz.QuizData, error)
}

type FeedbackJob struct {
	ResultID uuid.UUID `json:"result_id"`
	UserID   uuid.UUID `json:"user_id"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Topic    string    `json:"topic"`
}

type QuizService interface {
	Start(ctx context.Context, userID uuid.UUID, source catalog.Source) (*Session, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	SelectCategory(ctx context.Context, userID, sessionID uuid.UUID, dto SelectCategoryDTO) (*Session, error)
	SelectDomain(ctx context.Context, userID, sessionID uuid.UUID, dto SelectDomainDTO) (*Session, error)
	Answer(ctx context.Context, userID, sessionID uuid.UUID, choice int) (*Session, error)
	Back(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	Retake(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)

	ListResults(ctx context.Context, userID uuid.UUID) ([]*QuizResult, error)
	ListAllResults(ctx context.Context) ([]*QuizResult, error)
	GetResult(ctx context.Context, id uuid.UUID) (*QuizResult, error)
}

type quizService struct {
	repo      QuizRepository
	sessions  *SessionStore
	catalog   Catalog
	ai        aiquiz.Service
	publisher queue.Publisher
	locks     *sessionLocks
}

func NewService(repo QuizRepository, sessions *SessionStore, cat Catalog, ai aiquiz.Service, publisher queue.Publisher) QuizService {
	return &quizService{
		repo:      repo,
		sessions:  sessions,
		catalog:   cat,
		ai:        ai,
		publisher: publisher,
		locks:     newSessionLocks(),
	}
}

func (s *quizService) Start(ctx context.Context, userID uuid.UUID, source catalog.Source) (*Session, error) {
	if !source.IsValid() {
		return nil, catalog.ErrUnknownSource
	}
	sess := NewSession(userID, source)
	if err := s.sessions.Save(ctx, sess); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to store quiz session")
		return nil, err
	}
	config.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": sess.ID,
		"source":     source,
	}).Info("Quiz session started")
	return sess, nil
}

func (s *quizService) load(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *quizService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	return s.load(ctx, userID, sessionID)
}

// transition runs fn against the stored session under the session lock and
// saves the result when fn succeeds.
func (s *quizService) transition(ctx context.Context, userID, sessionID uuid.UUID, fn func(*Session) error) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return sess, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to store quiz session")
		return nil, err
	}
	return sess, nil
}

func (s *quizService) SelectCategory(ctx context.Context, userID, sessionID uuid.UUID, dto SelectCategoryDTO) (*Session, error) {
	return s.transition(ctx, userID, sessionID, func(sess *Session) error {
		if _, err := s.catalog.Category(sess.Source, dto.CategoryID); err != nil {
			return err
		}
		return sess.SelectCategory(dto.CategoryID)
	})
}

// SelectDomain moves the session through generating. The lock is released
// while the quiz is produced so other requests observe the generating state.
// On failure the stored session is back in domain selection and is returned
// together with the cause.
func (s *quizService) SelectDomain(ctx context.Context, userID, sessionID uuid.UUID, dto SelectDomainDTO) (*Session, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": sessionID,
		"domain_id":  dto.DomainID,
	})

	var domain catalog.Domain
	sess, err := s.transition(ctx, userID, sessionID, func(sess *Session) error {
		d, err := s.catalog.Domain(sess.Source, dto.DomainID)
		if err != nil {
			return err
		}
		if sess.State == StateDomainSelection && d.CategoryID != sess.CategoryID {
			return catalog.ErrDomainNotFound
		}
		domain = d
		return sess.BeginGeneration(d)
	})
	if err != nil {
		return nil, err
	}

	quiz, genErr := s.produce(ctx, sess.Source, domain, dto)
	if genErr != nil {
		log.WithError(genErr).Warn("Quiz generation failed, back to domain selection")
	}

	// The caller may be gone by now; the outcome is stored regardless so the
	// session never stays in generating.
	closeCtx := context.WithoutCancel(ctx)
	sess, err = s.transition(closeCtx, userID, sessionID, func(sess *Session) error {
		if genErr == nil {
			genErr = sess.CompleteGeneration(quiz)
		}
		if genErr != nil {
			return sess.FailGeneration(genErr)
		}
		log.Infof("Quiz ready with %d questions", len(quiz.Questions))
		return nil
	})
	if err != nil {
		return sess, err
	}
	return sess, genErr
}

func (s *quizService) produce(ctx context.Context, source catalog.Source, domain catalog.Domain, dto SelectDomainDTO) (*aiquiz.QuizData, error) {
	if source == catalog.SourceBank {
		return s.catalog.BankQuiz(domain.ID)
	}
	return s.ai.GenerateQuiz(ctx, aiquiz.QuizRequest{
		Topic:         domain.Name,
		Difficulty:    dto.Difficulty,
		QuestionCount: dto.QuestionCount,
	})
}

func (s *quizService) Answer(ctx context.Context, userID, sessionID uuid.UUID, choice int) (*Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	sess, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	next := sess.Clone()
	done, err := next.Answer(choice)
	if err != nil {
		return sess, err
	}

	if done {
		res, created, err := s.persist(ctx, next)
		if err != nil {
			return sess, err
		}
		next.ResultID = &res.ID
		if created {
			s.requestFeedback(ctx, next, res)
		}
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to store quiz session")
		return nil, err
	}
	return next, nil
}

// persist inserts the result of a finished session. A result already stored
// for the session, left by an attempt whose session save failed, is reused.
func (s *quizService) persist(ctx context.Context, sess *Session) (*QuizResult, bool, error) {
	log := config.WithContext(ctx).WithField("session_id", sess.ID)

	existing, err := s.repo.GetBySessionID(sess.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz result")
		return nil, false, err
	}
	if existing != nil {
		log.WithField("result_id", existing.ID).Info("Quiz result already saved, completing session")
		return existing, false, nil
	}

	res := &QuizResult{
		ID:             uuid.New(),
		UserID:         sess.UserID,
		SessionID:      sess.ID,
		QuizType:       sess.CategoryID,
		DomainID:       sess.DomainID,
		DomainName:     sess.DomainName,
		Source:         sess.Source,
		Score:          sess.Result.Score,
		TotalQuestions: sess.Result.TotalQuestions,
		Percentage:     sess.Result.Percentage,
		Answers:        datatypes.NewJSONType(append([]int{}, sess.Answers...)),
		AIGenerated:    sess.Source == catalog.SourceGenerated,
		FeedbackStatus: FeedbackPending,
		CompletedAt:    time.Now(),
	}
	if err := s.repo.Create(res); err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, false, err
	}

	log.WithFields(logrus.Fields{
		"result_id":  res.ID,
		"percentage": res.Percentage,
	}).Info("Quiz result saved")
	return res, true, nil
}

// requestFeedback hands feedback to the worker. If the job cannot be
// queued the template text is stored right away.
func (s *quizService) requestFeedback(ctx context.Context, sess *Session, res *QuizResult) {
	job := FeedbackJob{
		ResultID: res.ID,
		UserID:   res.UserID,
		Score:    res.Score,
		Total:    res.TotalQuestions,
		Topic:    sess.DomainName,
	}
	err := s.publisher.Publish(ctx, queue.TopicQuizFeedback, job)
	if err == nil {
		return
	}

	log := config.WithContext(ctx).WithField("result_id", res.ID)
	log.WithError(err).Warn("Could not queue feedback job, storing fallback")
	text := aiquiz.FallbackFeedback(job.Score, job.Total, job.Topic)
	if err := s.repo.UpdateFeedback(res.ID, text, FeedbackFallback); err != nil {
		log.WithError(err).Error("Failed to store fallback feedback")
	}
}

func (s *quizService) Back(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	return s.transition(ctx, userID, sessionID, func(sess *Session) error {
		return sess.Back()
	})
}

func (s *quizService) Retake(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	return s.transition(ctx, userID, sessionID, func(sess *Session) error {
		return sess.Retake()
	})
}

func (s *quizService) ListResults(ctx context.Context, userID uuid.UUID) ([]*QuizResult, error) {
	results, err := s.repo.ListByUser(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz results")
		return nil, err
	}
	return results, nil
}

func (s *quizService) ListAllResults(ctx context.Context) ([]*QuizResult, error) {
	results, err := s.repo.ListAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz results")
		return nil, err
	}
	return results, nil
}

func (s *quizService) GetResult(ctx context.Context, id uuid.UUID) (*QuizResult, error) {
	res, err := s.repo.GetByID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz result")
		return nil, err
	}
	if res == nil {
		return nil, ErrResultNotFound
	}
	return res, nil
}
