package resume

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

type Badge string

const (
	BadgeGold   Badge = "gold"
	BadgeSilver Badge = "silver"
	BadgeBronze Badge = "bronze"
)

const (
	excellentThreshold = 80
	strongThreshold    = 70
	competentThreshold = 50
	topPerformances    = 3
)

func BadgeFor(percentage int) Badge {
	switch {
	case percentage >= excellentThreshold:
		return BadgeGold
	case percentage >= strongThreshold:
		return BadgeSilver
	default:
		return BadgeBronze
	}
}

func AssessmentLevel(percentage int) string {
	switch {
	case percentage >= excellentThreshold:
		return "Expert"
	case percentage >= strongThreshold:
		return "Proficient"
	case percentage >= competentThreshold:
		return "Competent"
	default:
		return "Developing"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func domainLabel(r *quiz.QuizResult) string {
	if r.DomainName != "" {
		return r.DomainName
	}
	return r.DomainID
}

// Build assembles resume data from the candidate profile and quiz history.
func Build(now time.Time, p user.ProfileResponse, d *candidate.CandidateDetails, results []*quiz.QuizResult) ResumeData {
	data := ResumeData{
		PersonalInfo: PersonalInfo{
			Name:  strings.TrimSpace(p.FirstName + " " + p.LastName),
			Email: p.Email,
		},
		Achievements:    []Achievement{},
		Certifications:  []Certification{},
		TopPerformances: []Performance{},
		GeneratedAt:     now,
	}

	skills := []string{}
	seen := map[string]bool{}
	addSkill := func(s string) {
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, s)
	}

	if d != nil {
		data.PersonalInfo.Phone = d.Phone
		data.PersonalInfo.Address = d.Address
		data.PersonalInfo.CurrentPosition = d.CurrentPosition
		data.PersonalInfo.ExperienceYears = d.Experience()
		data.PersonalInfo.Education = d.Education
		data.PersonalInfo.Bio = d.Bio
		data.PersonalInfo.Linkedin = d.LinkedinProfile
		data.PersonalInfo.Github = d.GithubProfile
		for _, s := range d.Skills {
			addSkill(strings.TrimSpace(s))
		}
	}

	for _, r := range results {
		desc := fmt.Sprintf("Scored %d%% (%d/%d) in %s", r.Percentage, r.Score, r.TotalQuestions, domainLabel(r))
		switch {
		case r.Percentage >= excellentThreshold:
			data.Achievements = append(data.Achievements, Achievement{
				Title:       "Excellent Performance in " + r.QuizType,
				Description: desc,
				Level:       "excellent",
				Date:        r.CompletedAt,
			})
		case r.Percentage >= strongThreshold:
			data.Achievements = append(data.Achievements, Achievement{
				Title:       "Strong Performance in " + r.QuizType,
				Description: desc,
				Level:       "good",
				Date:        r.CompletedAt,
			})
		}

		data.Certifications = append(data.Certifications, Certification{
			Name:  fmt.Sprintf("%s Assessment - %s", capitalize(r.QuizType), domainLabel(r)),
			Score: fmt.Sprintf("%d%%", r.Percentage),
			Date:  r.CompletedAt,
			Badge: BadgeFor(r.Percentage),
		})
	}

	for _, r := range results {
		if r.Percentage >= strongThreshold {
			addSkill(capitalize(domainLabel(r)))
		}
	}
	data.Skills = skills

	strong := make([]*quiz.QuizResult, 0, len(results))
	for _, r := range results {
		if r.Percentage >= strongThreshold {
			strong = append(strong, r)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		return strong[i].Percentage > strong[j].Percentage
	})
	if len(strong) > topPerformances {
		strong = strong[:topPerformances]
	}
	for _, r := range strong {
		data.TopPerformances = append(data.TopPerformances, Performance{
			QuizType:   r.QuizType,
			Domain:     domainLabel(r),
			Score:      r.Score,
			Total:      r.TotalQuestions,
			Percentage: r.Percentage,
			Level:      AssessmentLevel(r.Percentage),
		})
	}
	return data
}
