package remark

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type Candidates interface {
	GetCandidate(ctx context.Context, userID uuid.UUID) (*candidate.Candidate, error)
}

type Service interface {
	Upsert(ctx context.Context, managerID, candidateID uuid.UUID, dto UpsertRemarkDTO) (*RemarkResponse, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]RemarkResponse, error)
	Latest(ctx context.Context) (map[uuid.UUID]RemarkResponse, error)
}

type service struct {
	repo       Repository
	candidates Candidates
}

func NewService(repo Repository, candidates Candidates) Service {
	return &service{repo: repo, candidates: candidates}
}

func (s *service) Upsert(ctx context.Context, managerID, candidateID uuid.UUID, dto UpsertRemarkDTO) (*RemarkResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"manager_id":   managerID,
		"candidate_id": candidateID,
	})

	if _, err := s.candidates.GetCandidate(ctx, candidateID); err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	status := dto.RecommendationStatus
	if status == "" {
		status = StatusPending
	}
	now := time.Now()
	rm := ManagerRemark{
		ID:                   uuid.New(),
		ManagerID:            managerID,
		CandidateID:          candidateID,
		Remarks:              dto.Remarks,
		Rating:               dto.Rating,
		RecommendationStatus: status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Upsert(&rm); err != nil {
		log.WithError(err).Error("Failed to save remark")
		return nil, err
	}

	log.WithField("status", status).Info("Remark saved")
	return toResponse(&rm), nil
}

func (s *service) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]RemarkResponse, error) {
	remarks, err := s.repo.FindByCandidateID(candidateID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list remarks")
		return nil, err
	}

	responses := make([]RemarkResponse, 0, len(remarks))
	for i := range remarks {
		responses = append(responses, *toResponse(&remarks[i]))
	}
	return responses, nil
}

// Latest returns the most recently updated remark of every candidate that
// has one.
func (s *service) Latest(ctx context.Context) (map[uuid.UUID]RemarkResponse, error) {
	remarks, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list remarks")
		return nil, err
	}

	latest := make(map[uuid.UUID]RemarkResponse)
	for i := range remarks {
		rm := &remarks[i]
		if cur, ok := latest[rm.CandidateID]; ok && !rm.UpdatedAt.After(cur.UpdatedAt) {
			continue
		}
		latest[rm.CandidateID] = *toResponse(rm)
	}
	return latest, nil
}

func toResponse(rm *ManagerRemark) *RemarkResponse {
	return &RemarkResponse{
		ID:                   rm.ID,
		ManagerID:            rm.ManagerID,
		CandidateID:          rm.CandidateID,
		Remarks:              rm.Remarks,
		Rating:               rm.Rating,
		RecommendationStatus: rm.RecommendationStatus,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}
}
