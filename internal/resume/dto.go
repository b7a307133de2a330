package resume

import "time"

type PersonalInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	CurrentPosition string `json:"current_position"`
	ExperienceYears int    `json:"experience_years"`
	Education       string `json:"education"`
	Bio             string `json:"bio"`
	Linkedin        string `json:"linkedin,omitempty"`
	Github          string `json:"github,omitempty"`
}

type Achievement struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	Date        time.Time `json:"date"`
}

type Certification struct {
	Name  string    `json:"name"`
	Score string    `json:"score"`
	Date  time.Time `json:"date"`
	Badge Badge     `json:"badge"`
}

type Performance struct {
	QuizType   string `json:"quiz_type"`
	Domain     string `json:"domain"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Level      string `json:"level"`
}

type ResumeData struct {
	PersonalInfo    PersonalInfo    `json:"personal_info"`
	Skills          []string        `json:"skills"`
	Achievements    []Achievement   `json:"achievements"`
	Certifications  []Certification `json:"certifications"`
	TopPerformances []Performance   `json:"top_performances"`
	GeneratedAt     time.Time       `json:"generated_at"`
}
