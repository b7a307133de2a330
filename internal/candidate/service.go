package candidate

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
	"gorm.io/datatypes"
)

var (
	ErrDetailsNotFound   = errors.New("candidate details not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// Profiles is the part of the user service this package reads.
type Profiles interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.Profile, error)
	ListCandidates(ctx context.Context) ([]*user.Profile, error)
}

type CandidateService interface {
	GetDetails(ctx context.Context, userID uuid.UUID) (*CandidateDetails, error)
	SaveDetails(ctx context.Context, userID uuid.UUID, dto SaveDetailsDTO) (*CandidateDetails, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (ProgressResponse, error)
	GetAccessibility(ctx context.Context, userID uuid.UUID) (AccessibilityPreferences, error)
	UpdateAccessibility(ctx context.Context, userID uuid.UUID, prefs AccessibilityPreferences) (AccessibilityPreferences, error)
	ListCandidates(ctx context.Context, search string) ([]Candidate, error)
	GetCandidate(ctx context.Context, userID uuid.UUID) (*Candidate, error)
}

type candidateService struct {
	repo     CandidateRepository
	profiles Profiles
}

func NewService(repo CandidateRepository, profiles Profiles) CandidateService {
	return &candidateService{repo: repo, profiles: profiles}
}

func (s *candidateService) GetDetails(ctx context.Context, userID uuid.UUID) (*CandidateDetails, error) {
	d, err := s.repo.GetByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load candidate details")
		return nil, err
	}
	if d == nil {
		return nil, ErrDetailsNotFound
	}
	return d, nil
}

// SaveDetails stores a draft. With Complete set every step must pass and
// the profile is marked completed.
func (s *candidateService) SaveDetails(ctx context.Context, userID uuid.UUID, dto SaveDetailsDTO) (*CandidateDetails, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	existing, err := s.repo.GetByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load candidate details")
		return nil, err
	}

	d := &CandidateDetails{
		ID:                       uuid.New(),
		UserID:                   userID,
		Phone:                    strings.TrimSpace(dto.Phone),
		Address:                  strings.TrimSpace(dto.Address),
		Skills:                   normalizeSkills(dto.Skills),
		ExperienceYears:          dto.ExperienceYears,
		Education:                strings.TrimSpace(dto.Education),
		CurrentPosition:          strings.TrimSpace(dto.CurrentPosition),
		LinkedinProfile:          strings.TrimSpace(dto.LinkedinProfile),
		GithubProfile:            strings.TrimSpace(dto.GithubProfile),
		Bio:                      strings.TrimSpace(dto.Bio),
		AccessibilityPreferences: datatypes.NewJSONType(DefaultAccessibility()),
	}
	if existing != nil {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
		d.AccessibilityPreferences = existing.AccessibilityPreferences
	}

	stepsErr := ValidateSteps(d)
	if dto.Complete && stepsErr != nil {
		log.WithError(stepsErr).Warn("Profile completion rejected")
		return nil, stepsErr
	}
	d.ProfileCompleted = stepsErr == nil && (dto.Complete || (existing != nil && existing.ProfileCompleted))

	if err := s.repo.Upsert(d); err != nil {
		log.WithError(err).Error("Failed to save candidate details")
		return nil, err
	}

	log.WithField("completed", d.ProfileCompleted).Info("Candidate details saved")
	return d, nil
}

func (s *candidateService) GetProgress(ctx context.Context, userID uuid.UUID) (ProgressResponse, error) {
	d, err := s.repo.GetByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load candidate details")
		return ProgressResponse{}, err
	}
	return Progress(d), nil
}

func (s *candidateService) GetAccessibility(ctx context.Context, userID uuid.UUID) (AccessibilityPreferences, error) {
	d, err := s.repo.GetByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load candidate details")
		return AccessibilityPreferences{}, err
	}
	if d == nil {
		return DefaultAccessibility(), nil
	}
	return d.Accessibility(), nil
}

func (s *candidateService) UpdateAccessibility(ctx context.Context, userID uuid.UUID, prefs AccessibilityPreferences) (AccessibilityPreferences, error) {
	prefs = prefs.WithDefaults()
	if err := validate.Struct(prefs); err != nil {
		return AccessibilityPreferences{}, err
	}
	if err := s.repo.UpsertAccessibility(userID, prefs); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to save accessibility preferences")
		return AccessibilityPreferences{}, err
	}
	return prefs, nil
}

func (s *candidateService) ListCandidates(ctx context.Context, search string) ([]Candidate, error) {
	log := config.WithContext(ctx)

	profiles, err := s.profiles.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.repo.List()
	if err != nil {
		log.WithError(err).Error("Failed to list candidate details")
		return nil, err
	}

	byUser := make(map[uuid.UUID]*CandidateDetails, len(details))
	for _, d := range details {
		byUser[d.UserID] = d
	}

	out := make([]Candidate, 0, len(profiles))
	for _, p := range profiles {
		c := Candidate{Profile: user.ToResponse(p), Details: byUser[p.UserID]}
		if c.Matches(search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *candidateService) GetCandidate(ctx context.Context, userID uuid.UUID) (*Candidate, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	if p.Role != user.RoleCandidate {
		return nil, ErrCandidateNotFound
	}

	d, err := s.repo.GetByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load candidate details")
		return nil, err
	}
	return &Candidate{Profile: user.ToResponse(p), Details: d}, nil
}
