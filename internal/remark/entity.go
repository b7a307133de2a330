package remark

import (
	"time"

	"github.com/google/uuid"
)

type ManagerRemark struct {
	ID                   uuid.UUID            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ManagerID            uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_remark_manager_candidate" json:"manager_id"`
	CandidateID          uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_remark_manager_candidate;index" json:"candidate_id"`
	Remarks              string               `gorm:"type:text;not null" json:"remarks"`
	Rating               int                  `gorm:"not null" json:"rating"`
	RecommendationStatus RecommendationStatus `gorm:"type:text;not null;default:pending" json:"recommendation_status"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func (ManagerRemark) TableName() string {
	return "manager_remarks"
}
