package analytics

import (
	"context"
	"time"

	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
)

const (
	dashboardKey = "analytics:dashboard"
	dashboardTTL = 60 * time.Second
)

type Candidates interface {
	ListCandidates(ctx context.Context, search string) ([]candidate.Candidate, error)
}

type Results interface {
	ListAllResults(ctx context.Context) ([]*quiz.QuizResult, error)
}

type Service interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
}

type service struct {
	candidates Candidates
	results    Results
	cache      cache.Store
	now        func() time.Time
}

func NewService(candidates Candidates, results Results, store cache.Store) Service {
	return &service{candidates: candidates, results: results, cache: store, now: time.Now}
}

// Dashboard serves from cache when possible. Cache failures only cost a
// recomputation.
func (s *service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	log := config.WithContext(ctx)

	var cached DashboardResponse
	hit, err := s.cache.Get(ctx, dashboardKey, &cached)
	if err != nil {
		log.WithError(err).Warn("Dashboard cache read failed")
	}
	if hit {
		return &cached, nil
	}

	candidates, err := s.candidates.ListCandidates(ctx, "")
	if err != nil {
		log.WithError(err).Error("Failed to list candidates for dashboard")
		return nil, err
	}
	results, err := s.results.ListAllResults(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz results for dashboard")
		return nil, err
	}

	resp := Compute(s.now(), candidates, results)
	if err := s.cache.Set(ctx, dashboardKey, resp, dashboardTTL); err != nil {
		log.WithError(err).Warn("Dashboard cache write failed")
	}
	return resp, nil
}
