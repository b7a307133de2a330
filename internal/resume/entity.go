package resume

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GeneratedResume struct {
	ID         uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ResumeData datatypes.JSONType[ResumeData] `gorm:"type:jsonb;not null" json:"resume_data"`
	CreatedAt  time.Time                      `json:"created_at"`
	UpdatedAt  time.Time                      `json:"updated_at"`
}

func (GeneratedResume) TableName() string {
	return "generated_resumes"
}
