package analytics

import "time"

type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type GrowthPoint struct {
	Month string `json:"month"`
	Label string `json:"label"`
	Total int    `json:"total"`
}

type DomainAverage struct {
	DomainID          string  `json:"domain_id"`
	Label             string  `json:"label"`
	Attempts          int     `json:"attempts"`
	AveragePercentage float64 `json:"average_percentage"`
}

type Totals struct {
	Candidates        int     `json:"candidates"`
	CompletedProfiles int     `json:"completed_profiles"`
	Attempts          int     `json:"attempts"`
	Correct           int     `json:"correct"`
	Incorrect         int     `json:"incorrect"`
	AverageScore      float64 `json:"average_score"`
}

type DashboardResponse struct {
	Totals         Totals          `json:"totals"`
	Experience     []Bucket        `json:"experience"`
	TopSkills      []Bucket        `json:"top_skills"`
	Growth         []GrowthPoint   `json:"growth"`
	QuizTypes      []Bucket        `json:"quiz_types"`
	DomainAverages []DomainAverage `json:"domain_averages"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
