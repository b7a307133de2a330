package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(p *Profile) error
	GetByID(id uuid.UUID) (*Profile, error)
	GetByEmail(email string) (*Profile, error)
	ListByRole(role Role) ([]*Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(p *Profile) error {
	return r.db.Create(p).Error
}

func (r *userRepository) GetByID(id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.First(&p, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *userRepository) GetByEmail(email string) (*Profile, error) {
	var p Profile
	if err := r.db.First(&p, "lower(email) = lower(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *userRepository) ListByRole(role Role) ([]*Profile, error) {
	var profiles []*Profile
	if err := r.db.
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
