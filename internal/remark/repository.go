package remark

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(r *ManagerRemark) error
	FindByCandidateID(candidateID uuid.UUID) ([]ManagerRemark, error)
	FindAll() ([]ManagerRemark, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert keeps one remark per manager and candidate. The last write wins.
func (r *repository) Upsert(rm *ManagerRemark) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "manager_id"}, {Name: "candidate_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"remarks", "rating", "recommendation_status", "updated_at"}),
	}).Create(rm).Error
}

func (r *repository) FindByCandidateID(candidateID uuid.UUID) ([]ManagerRemark, error) {
	var remarks []ManagerRemark
	if err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("updated_at DESC").
		Find(&remarks).Error; err != nil {
		return nil, err
	}
	return remarks, nil
}

func (r *repository) FindAll() ([]ManagerRemark, error) {
	var remarks []ManagerRemark
	if err := r.db.Order("updated_at DESC").Find(&remarks).Error; err != nil {
		return nil, err
	}
	return remarks, nil
}
