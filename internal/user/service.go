package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	ListCandidates(ctx context.Context) ([]*Profile, error)
}

type userService struct {
	repo     UserRepository
	tokenTTL time.Duration
}

func NewService(repo UserRepository, tokenTTL time.Duration) UserService {
	return &userService{repo: repo, tokenTTL: tokenTTL}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		UserID:       uuid.New(),
		Email:        email,
		FirstName:    strings.TrimSpace(dto.FirstName),
		LastName:     strings.TrimSpace(dto.LastName),
		Role:         dto.Role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(p); err != nil {
		log.WithError(err).Error("Failed to create profile")
		return nil, err
	}

	log.WithField("user_id", p.UserID).Info("User registered")
	return s.issue(p)
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	p, err := s.repo.GetByEmail(strings.TrimSpace(dto.Email))
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if p == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(dto.Password)); err != nil {
		log.WithField("user_id", p.UserID).Warn("Wrong password")
		return nil, ErrInvalidCredentials
	}

	return s.issue(p)
}

func (s *userService) issue(p *Profile) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(p.UserID.String(), string(p.Role), s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenTTL),
		Profile:   ToResponse(p),
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load profile")
		return nil, err
	}
	if p == nil {
		return nil, ErrUserNotFound
	}
	return p, nil
}

func (s *userService) ListCandidates(ctx context.Context) ([]*Profile, error) {
	profiles, err := s.repo.ListByRole(RoleCandidate)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list candidates")
		return nil, err
	}
	return profiles, nil
}
