package resume

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(r *GeneratedResume) error
	GetByUserID(userID uuid.UUID) (*GeneratedResume, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(res *GeneratedResume) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"resume_data", "updated_at"}),
	}).Create(res).Error
}

func (r *repository) GetByUserID(userID uuid.UUID) (*GeneratedResume, error) {
	var res GeneratedResume
	if err := r.db.First(&res, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}
