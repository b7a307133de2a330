package report

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/queue"
	"github.com/saulo-duarte/neurobridge-lambda/internal/remark"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownPlatform   = errors.New("unknown share platform")
	ErrCandidateNotFound = errors.New("candidate not found")
)

type Candidates interface {
	ListCandidates(ctx context.Context, search string) ([]candidate.Candidate, error)
}

type Remarks interface {
	Latest(ctx context.Context) (map[uuid.UUID]remark.RemarkResponse, error)
}

type Service interface {
	List(ctx context.Context, f Filter) ([]Report, error)
	Summary(ctx context.Context) (Summary, error)
	Share(ctx context.Context, managerID, candidateID uuid.UUID, platform Platform) error
}

type service struct {
	candidates Candidates
	remarks    Remarks
	publisher  queue.Publisher
}

func NewService(candidates Candidates, remarks Remarks, publisher queue.Publisher) Service {
	return &service{candidates: candidates, remarks: remarks, publisher: publisher}
}

func (s *service) all(ctx context.Context) ([]Report, error) {
	candidates, err := s.candidates.ListCandidates(ctx, "")
	if err != nil {
		return nil, err
	}
	latest, err := s.remarks.Latest(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(candidates))
	for _, c := range candidates {
		var rm *remark.RemarkResponse
		if r, ok := latest[c.Profile.UserID]; ok {
			rm = &r
		}
		reports = append(reports, Build(c, rm))
	}
	return reports, nil
}

// Build combines a candidate with its latest remark, which may be nil.
func Build(c candidate.Candidate, rm *remark.RemarkResponse) Report {
	r := Report{
		CandidateID:          c.Profile.UserID,
		FirstName:            c.Profile.FirstName,
		LastName:             c.Profile.LastName,
		Email:                c.Profile.Email,
		Skills:               []string{},
		Remarks:              NoRemarks,
		RecommendationStatus: remark.StatusPending,
	}
	if d := c.Details; d != nil {
		r.Phone = d.Phone
		r.CurrentPosition = d.CurrentPosition
		r.ExperienceYears = d.Experience()
		r.Bio = d.Bio
		if d.Skills != nil {
			r.Skills = d.Skills
		}
	}
	if rm != nil {
		r.Rating = rm.Rating
		r.Remarks = rm.Remarks
		r.RecommendationStatus = rm.RecommendationStatus
	}
	return r
}

// Apply keeps reports matching the status and search term. The term is
// matched against name, email, position and skills.
func Apply(reports []Report, f Filter) []Report {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		if f.Status != "" && f.Status != StatusAll && string(r.RecommendationStatus) != f.Status {
			continue
		}
		if term != "" && !matches(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Report, term string) bool {
	for _, field := range []string{r.FirstName, r.LastName, r.Email, r.CurrentPosition} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, s := range r.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// Summarize averages ratings over rated candidates only, to one decimal.
func Summarize(reports []Report) Summary {
	sum := Summary{Total: len(reports)}
	rated, total := 0, 0
	for _, r := range reports {
		switch r.RecommendationStatus {
		case remark.StatusRecommended:
			sum.Recommended++
		case remark.StatusPending:
			sum.Pending++
		case remark.StatusNotRecommended:
			sum.NotRecommended++
		}
		if r.Rating > 0 {
			rated++
			total += r.Rating
		}
	}
	if rated > 0 {
		sum.AverageRating = math.Round(float64(total)/float64(rated)*10) / 10
	}
	return sum
}

func (s *service) List(ctx context.Context, f Filter) ([]Report, error) {
	reports, err := s.all(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to assemble reports")
		return nil, err
	}
	return Apply(reports, f), nil
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	reports, err := s.all(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to assemble reports")
		return Summary{}, err
	}
	return Summarize(reports), nil
}

func (s *service) Share(ctx context.Context, managerID, candidateID uuid.UUID, platform Platform) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"candidate_id": candidateID,
		"platform":     platform,
	})
	if !platform.IsValid() {
		return ErrUnknownPlatform
	}

	reports, err := s.all(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to assemble reports")
		return err
	}
	for _, r := range reports {
		if r.CandidateID != candidateID {
			continue
		}
		job := ShareJob{
			CandidateID:   candidateID,
			CandidateName: r.Name(),
			Platform:      platform,
			RequestedBy:   managerID,
			Report:        r,
		}
		if err := s.publisher.Publish(ctx, queue.TopicReportShare, job); err != nil {
			log.WithError(err).Error("Failed to queue report share")
			return err
		}
		log.Info("Report share queued")
		return nil
	}
	return ErrCandidateNotFound
}
