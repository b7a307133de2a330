package candidate

import (
	"strings"

	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

type SaveDetailsDTO struct {
	Phone           string   `json:"phone" validate:"max=32"`
	Address         string   `json:"address" validate:"max=300"`
	Skills          []string `json:"skills" validate:"max=50,dive,max=60"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,min=0,max=60"`
	Education       string   `json:"education" validate:"max=300"`
	CurrentPosition string   `json:"current_position" validate:"max=120"`
	LinkedinProfile string   `json:"linkedin_profile" validate:"omitempty,url"`
	GithubProfile   string   `json:"github_profile" validate:"omitempty,url"`
	Bio             string   `json:"bio" validate:"max=2000"`
	Complete        bool     `json:"complete"`
}

type StepStatus struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
}

type ProgressResponse struct {
	Steps            []StepStatus `json:"steps"`
	CompletedSteps   int          `json:"completed_steps"`
	TotalSteps       int          `json:"total_steps"`
	Percent          int          `json:"percent"`
	NextStep         string       `json:"next_step,omitempty"`
	ProfileCompleted bool         `json:"profile_completed"`
}

// Candidate joins a candidate profile with its details, which may be nil.
type Candidate struct {
	Profile user.ProfileResponse `json:"profile"`
	Details *CandidateDetails    `json:"details"`
}

func (c Candidate) FullName() string {
	return strings.TrimSpace(c.Profile.FirstName + " " + c.Profile.LastName)
}

func (c Candidate) Skills() []string {
	if c.Details == nil {
		return nil
	}
	return c.Details.Skills
}

// Matches reports whether term appears in the name, email or any skill.
func (c Candidate) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Profile.FirstName), term) ||
		strings.Contains(strings.ToLower(c.Profile.LastName), term) ||
		strings.Contains(strings.ToLower(c.Profile.Email), term) {
		return true
	}
	for _, s := range c.Skills() {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func normalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
