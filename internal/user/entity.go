package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"user_id"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	FirstName    string    `gorm:"type:text;not null" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	Role         Role      `gorm:"type:text;not null;default:candidate;index" json:"role"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
