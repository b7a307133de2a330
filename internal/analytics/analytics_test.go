package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/saulo-duarte/neurobridge-lambda/internal/analytics"
	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func cand(created time.Time, years *int, skills ...string) candidate.Candidate {
	c := candidate.Candidate{Profile: user.ProfileResponse{UserID: uuid.New(), CreatedAt: created}}
	if years != nil || len(skills) > 0 {
		c.Details = &candidate.CandidateDetails{ExperienceYears: years, Skills: pq.StringArray(skills)}
	}
	return c
}

func result(quizType, domain string, score, total, pct int) *quiz.QuizResult {
	return &quiz.QuizResult{QuizType: quizType, DomainID: domain, Score: score, TotalQuestions: total, Percentage: pct}
}

func TestCompute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	candidates := []candidate.Candidate{
		cand(time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC), intPtr(1), "Go", " Python "),
		cand(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), intPtr(5), "Go"),
		cand(time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC), intPtr(6), "Rust"),
		cand(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), intPtr(12)),
		cand(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), nil),
	}
	results := []*quiz.QuizResult{
		result("cognitive", "python", 8, 10, 80),
		result("cognitive", "python", 5, 10, 50),
		result("motor", "networking", 10, 10, 100),
	}

	d := analytics.Compute(now, candidates, results)

	assert.Equal(t, []analytics.Bucket{
		{Label: "0-2 years", Count: 2},
		{Label: "3-5 years", Count: 1},
		{Label: "6-10 years", Count: 1},
		{Label: "10+ years", Count: 1},
	}, d.Experience)

	require.Len(t, d.TopSkills, 3)
	assert.Equal(t, analytics.Bucket{Label: "Go", Count: 2}, d.TopSkills[0])
	assert.Equal(t, "Python", d.TopSkills[1].Label)

	require.Len(t, d.Growth, 6)
	assert.Equal(t, "2024-01", d.Growth[0].Month)
	assert.Equal(t, "Jan 2024", d.Growth[0].Label)
	totals := []int{}
	for _, g := range d.Growth {
		totals = append(totals, g.Total)
	}
	assert.Equal(t, []int{1, 2, 2, 3, 3, 5}, totals)

	assert.Equal(t, []analytics.Bucket{{Label: "cognitive", Count: 2}, {Label: "motor", Count: 1}}, d.QuizTypes)

	require.Len(t, d.DomainAverages, 2)
	assert.Equal(t, "networking", d.DomainAverages[0].DomainID)
	assert.Equal(t, "Networking", d.DomainAverages[0].Label)
	assert.Equal(t, 65.0, d.DomainAverages[1].AveragePercentage)

	assert.Equal(t, analytics.Totals{Candidates: 5, Attempts: 3, Correct: 23, Incorrect: 7, AverageScore: 7.7}, d.Totals)
}

func TestTopSkillsCapped(t *testing.T) {
	var candidates []candidate.Candidate
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		candidates = append(candidates, cand(time.Now(), intPtr(0), s))
	}
	d := analytics.Compute(time.Now(), candidates, nil)
	assert.Len(t, d.TopSkills, 10)
	assert.Equal(t, 0.0, d.Totals.AverageScore)
}

type countingCandidates struct{ calls int }

func (c *countingCandidates) ListCandidates(_ context.Context, _ string) ([]candidate.Candidate, error) {
	c.calls++
	return nil, nil
}

type noResults struct{}

func (noResults) ListAllResults(_ context.Context) ([]*quiz.QuizResult, error) { return nil, nil }

func TestDashboardIsCached(t *testing.T) {
	cands := &countingCandidates{}
	svc := analytics.NewService(cands, noResults{}, cache.NewMemoryStore())

	_, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	_, err = svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cands.calls)
}
