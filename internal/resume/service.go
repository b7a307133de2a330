package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
	"gorm.io/datatypes"
)

var (
	ErrProfileIncomplete = errors.New("complete your profile before generating a resume")
	ErrResumeNotFound    = errors.New("resume not generated yet")
)

type Profiles interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.Profile, error)
}

type Details interface {
	GetDetails(ctx context.Context, userID uuid.UUID) (*candidate.CandidateDetails, error)
}

type Results interface {
	ListResults(ctx context.Context, userID uuid.UUID) ([]*quiz.QuizResult, error)
}

type Service interface {
	Generate(ctx context.Context, userID uuid.UUID) (*ResumeData, error)
	Get(ctx context.Context, userID uuid.UUID) (*ResumeData, error)
	Download(ctx context.Context, userID uuid.UUID) (filename string, body []byte, err error)
}

type service struct {
	repo     Repository
	profiles Profiles
	details  Details
	results  Results
}

func NewService(repo Repository, profiles Profiles, details Details, results Results) Service {
	return &service{repo: repo, profiles: profiles, details: details, results: results}
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID) (*ResumeData, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	d, err := s.details.GetDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, candidate.ErrDetailsNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	results, err := s.results.ListResults(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := Build(time.Now(), user.ToResponse(p), d, results)
	row := &GeneratedResume{
		ID:         uuid.New(),
		UserID:     userID,
		ResumeData: datatypes.NewJSONType(data),
	}
	if err := s.repo.Upsert(row); err != nil {
		log.WithError(err).Error("Failed to save resume")
		return nil, err
	}

	log.WithFields(map[string]any{
		"achievements":   len(data.Achievements),
		"certifications": len(data.Certifications),
	}).Info("Resume generated")
	return &data, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ResumeData, error) {
	row, err := s.repo.GetByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load resume")
		return nil, err
	}
	if row == nil {
		return nil, ErrResumeNotFound
	}
	data := row.ResumeData.Data()
	return &data, nil
}

func (s *service) Download(ctx context.Context, userID uuid.UUID) (string, []byte, error) {
	data, err := s.Get(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	body, err := Render(*data)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to render resume")
		return "", nil, err
	}
	return Filename(data.PersonalInfo.Name), body, nil
}
