package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	util "github.com/saulo-duarte/neurobridge-lambda/internal/utils"
)

const (
	topSkillsLimit = 10
	growthMonths   = 6
)

var experienceLabels = []string{"0-2 years", "3-5 years", "6-10 years", "10+ years"}

func experienceBucket(years int) int {
	switch {
	case years <= 2:
		return 0
	case years <= 5:
		return 1
	case years <= 10:
		return 2
	default:
		return 3
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortedBuckets orders by count descending, then label.
func sortedBuckets(counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for label, n := range counts {
		out = append(out, Bucket{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Compute builds the dashboard from candidates and every stored quiz result.
func Compute(now time.Time, candidates []candidate.Candidate, results []*quiz.QuizResult) *DashboardResponse {
	resp := &DashboardResponse{GeneratedAt: now}

	experience := make([]Bucket, len(experienceLabels))
	for i, l := range experienceLabels {
		experience[i].Label = l
	}
	skills := map[string]int{}
	for _, c := range candidates {
		resp.Totals.Candidates++
		if c.Details != nil && c.Details.ProfileCompleted {
			resp.Totals.CompletedProfiles++
		}
		experience[experienceBucket(c.Details.Experience())].Count++
		for _, s := range c.Skills() {
			if s = strings.TrimSpace(s); s != "" {
				skills[s]++
			}
		}
	}
	resp.Experience = experience

	top := sortedBuckets(skills)
	if len(top) > topSkillsLimit {
		top = top[:topSkillsLimit]
	}
	resp.TopSkills = top
	resp.Growth = growth(now, candidates)

	types := map[string]int{}
	type acc struct {
		label string
		sum   int
		n     int
	}
	domains := map[string]*acc{}
	for _, r := range results {
		resp.Totals.Attempts++
		resp.Totals.Correct += r.Score
		resp.Totals.Incorrect += r.TotalQuestions - r.Score
		types[r.QuizType]++

		a, ok := domains[r.DomainID]
		if !ok {
			label := r.DomainName
			if label == "" {
				label = capitalize(r.DomainID)
			}
			a = &acc{label: label}
			domains[r.DomainID] = a
		}
		a.sum += r.Percentage
		a.n++
	}
	if resp.Totals.Attempts > 0 {
		resp.Totals.AverageScore = round1(float64(resp.Totals.Correct) / float64(resp.Totals.Attempts))
	}
	resp.QuizTypes = sortedBuckets(types)

	resp.DomainAverages = make([]DomainAverage, 0, len(domains))
	for id, a := range domains {
		resp.DomainAverages = append(resp.DomainAverages, DomainAverage{
			DomainID:          id,
			Label:             a.label,
			Attempts:          a.n,
			AveragePercentage: round1(float64(a.sum) / float64(a.n)),
		})
	}
	sort.Slice(resp.DomainAverages, func(i, j int) bool {
		return resp.DomainAverages[i].DomainID < resp.DomainAverages[j].DomainID
	})
	return resp
}

// growth reports, for each of the last months, how many candidates had
// signed up by the end of that month.
func growth(now time.Time, candidates []candidate.Candidate) []GrowthPoint {
	months := util.LastMonths(now, growthMonths)
	points := make([]GrowthPoint, len(months))
	for i, m := range months {
		end := util.EndOfMonth(m)
		total := 0
		for _, c := range candidates {
			if !c.Profile.CreatedAt.After(end) {
				total++
			}
		}
		points[i] = GrowthPoint{Month: util.MonthKey(m), Label: util.MonthLabel(m), Total: total}
	}
	return points
}
