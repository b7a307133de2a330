package report

import (
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/remark"
)

const NoRemarks = "No remarks yet"

type Report struct {
	CandidateID          uuid.UUID                   `json:"candidate_id"`
	FirstName            string                      `json:"first_name"`
	LastName             string                      `json:"last_name"`
	Email                string                      `json:"email"`
	Phone                string                      `json:"phone"`
	CurrentPosition      string                      `json:"current_position"`
	ExperienceYears      int                         `json:"experience_years"`
	Skills               []string                    `json:"skills"`
	Bio                  string                      `json:"bio"`
	Rating               int                         `json:"rating"`
	Remarks              string                      `json:"remarks"`
	RecommendationStatus remark.RecommendationStatus `json:"recommendation_status"`
}

func (r Report) Name() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

type Filter struct {
	Status string `json:"status" validate:"omitempty,oneof=all recommended pending not_recommended"`
	Search string `json:"search" validate:"max=120"`
}

type Summary struct {
	Total          int     `json:"total"`
	Recommended    int     `json:"recommended"`
	Pending        int     `json:"pending"`
	NotRecommended int     `json:"not_recommended"`
	AverageRating  float64 `json:"average_rating"`
}

type ShareDTO struct {
	Platform Platform `json:"platform" validate:"required,oneof=linkedin naukri unstop data_team"`
}

type ShareJob struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	Platform      Platform  `json:"platform"`
	RequestedBy   uuid.UUID `json:"requested_by"`
	Report        Report    `json:"report"`
}

type ShareResponse struct {
	Message string `json:"message"`
}
