package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"gorm.io/datatypes"
)

// QuizResult is appended once per completed session. Only the feedback
// columns change after insert.
type QuizResult struct {
	ID             uuid.UUID                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID      uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"`
	QuizType       string                    `gorm:"type:text;not null;index" json:"quiz_type"`
	DomainID       string                    `gorm:"type:text;not null;index" json:"domain_id"`
	DomainName     string                    `gorm:"type:text;not null" json:"domain_name"`
	Source         catalog.Source            `gorm:"type:text;not null" json:"source"`
	Score          int                       `gorm:"not null" json:"score"`
	TotalQuestions int                       `gorm:"not null" json:"total_questions"`
	Percentage     int                       `gorm:"not null" json:"percentage"`
	Answers        datatypes.JSONType[[]int] `gorm:"type:jsonb;not null" json:"answers"`
	AIGenerated    bool                      `gorm:"not null;default:false" json:"ai_generated"`
	Feedback       *string                   `gorm:"type:text" json:"feedback,omitempty"`
	FeedbackStatus FeedbackStatus            `gorm:"type:text;not null;default:pending" json:"feedback_status"`
	CompletedAt    time.Time                 `gorm:"not null;index" json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
