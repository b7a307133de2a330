package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(r *QuizResult) error
	GetByID(id uuid.UUID) (*QuizResult, error)
	GetBySessionID(sessionID uuid.UUID) (*QuizResult, error)
	ListByUser(userID uuid.UUID) ([]*QuizResult, error)
	ListAll() ([]*QuizResult, error)
	UpdateFeedback(id uuid.UUID, feedback string, status FeedbackStatus) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(res *QuizResult) error {
	return r.db.Create(res).Error
}

func (r *quizRepository) GetByID(id uuid.UUID) (*QuizResult, error) {
	var res QuizResult
	if err := r.db.First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *quizRepository) GetBySessionID(sessionID uuid.UUID) (*QuizResult, error) {
	var res QuizResult
	if err := r.db.First(&res, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *quizRepository) ListByUser(userID uuid.UUID) ([]*QuizResult, error) {
	var results []*QuizResult
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) ListAll() ([]*QuizResult, error) {
	var results []*QuizResult
	if err := r.db.Order("completed_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) UpdateFeedback(id uuid.UUID, feedback string, status FeedbackStatus) error {
	return r.db.Model(&QuizResult{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"feedback":        feedback,
			"feedback_status": status,
		}).Error
}
