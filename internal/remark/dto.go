package remark

import (
	"time"

	"github.com/google/uuid"
)

type UpsertRemarkDTO struct {
	Remarks              string               `json:"remarks" validate:"required,max=2000"`
	Rating               int                  `json:"rating" validate:"required,min=1,max=5"`
	RecommendationStatus RecommendationStatus `json:"recommendation_status" validate:"omitempty,oneof=recommended pending not_recommended"`
}

type RemarkResponse struct {
	ID                   uuid.UUID            `json:"id"`
	ManagerID            uuid.UUID            `json:"manager_id"`
	CandidateID          uuid.UUID            `json:"candidate_id"`
	Remarks              string               `json:"remarks"`
	Rating               int                  `json:"rating"`
	RecommendationStatus RecommendationStatus `json:"recommendation_status"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}
