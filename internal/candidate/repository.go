package candidate

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepository interface {
	GetByUserID(userID uuid.UUID) (*CandidateDetails, error)
	List() ([]*CandidateDetails, error)
	Upsert(d *CandidateDetails) error
	UpsertAccessibility(userID uuid.UUID, prefs AccessibilityPreferences) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(userID uuid.UUID) (*CandidateDetails, error) {
	var d CandidateDetails
	if err := r.db.First(&d, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := openPII(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *candidateRepository) List() ([]*CandidateDetails, error) {
	var details []*CandidateDetails
	if err := r.db.Order("created_at ASC").Find(&details).Error; err != nil {
		return nil, err
	}
	for _, d := range details {
		if err := openPII(d); err != nil {
			return nil, err
		}
	}
	return details, nil
}

func (r *candidateRepository) Upsert(d *CandidateDetails) error {
	sealed, err := sealPII(d)
	if err != nil {
		return err
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phone", "address", "skills", "experience_years", "education",
			"current_position", "linkedin_profile", "github_profile", "bio",
			"profile_completed", "updated_at",
		}),
	}).Create(sealed).Error
	if err != nil {
		return err
	}
	d.ID = sealed.ID
	return nil
}

func (r *candidateRepository) UpsertAccessibility(userID uuid.UUID, prefs AccessibilityPreferences) error {
	row := &CandidateDetails{
		ID:                       uuid.New(),
		UserID:                   userID,
		AccessibilityPreferences: datatypes.NewJSONType(prefs),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"accessibility_preferences", "updated_at"}),
	}).Create(row).Error
}
