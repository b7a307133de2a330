package candidate

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	DefaultFontSize = 16
	MinFontSize     = 12
	MaxFontSize     = 24
)

type AccessibilityPreferences struct {
	HighContrast       bool       `json:"highContrast"`
	ReducedMotion      bool       `json:"reducedMotion"`
	FontSize           int        `json:"fontSize" validate:"min=12,max=24"`
	ColorTheme         ColorTheme `json:"colorTheme" validate:"oneof=default warm cool monochrome"`
	SoundEnabled       bool       `json:"soundEnabled"`
	KeyboardNavigation bool       `json:"keyboardNavigation"`
}

func DefaultAccessibility() AccessibilityPreferences {
	return AccessibilityPreferences{
		FontSize:   DefaultFontSize,
		ColorTheme: ThemeDefault,
	}
}

// WithDefaults fills the zero values a client may omit.
func (p AccessibilityPreferences) WithDefaults() AccessibilityPreferences {
	if p.FontSize == 0 {
		p.FontSize = DefaultFontSize
	}
	if p.ColorTheme == "" {
		p.ColorTheme = ThemeDefault
	}
	return p
}

// CandidateDetails holds the extended profile of a candidate. Phone and
// Address are stored encrypted; the repository hands them out in clear.
type CandidateDetails struct {
	ID                       uuid.UUID                                    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                   uuid.UUID                                    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Phone                    string                                       `gorm:"type:text" json:"phone"`
	Address                  string                                       `gorm:"type:text" json:"address"`
	Skills                   pq.StringArray                               `gorm:"type:text[]" json:"skills"`
	ExperienceYears          *int                                         `json:"experience_years"`
	Education                string                                       `gorm:"type:text" json:"education"`
	CurrentPosition          string                                       `gorm:"type:text" json:"current_position"`
	LinkedinProfile          string                                       `gorm:"type:text" json:"linkedin_profile"`
	GithubProfile            string                                       `gorm:"type:text" json:"github_profile"`
	Bio                      string                                       `gorm:"type:text" json:"bio"`
	AccessibilityPreferences datatypes.JSONType[AccessibilityPreferences] `gorm:"type:jsonb" json:"accessibility_preferences"`
	ProfileCompleted         bool                                         `gorm:"not null;default:false" json:"profile_completed"`
	CreatedAt                time.Time                                    `json:"created_at"`
	UpdatedAt                time.Time                                    `json:"updated_at"`
}

func (CandidateDetails) TableName() string {
	return "candidate_details"
}

func (d *CandidateDetails) Experience() int {
	if d == nil || d.ExperienceYears == nil {
		return 0
	}
	return *d.ExperienceYears
}

func (d *CandidateDetails) Accessibility() AccessibilityPreferences {
	return d.AccessibilityPreferences.Data().WithDefaults()
}
