package resume_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/resume"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*resume.GeneratedResume
}

func (m *memRepo) Upsert(r *resume.GeneratedResume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.rows[r.UserID] = &cp
	return nil
}

func (m *memRepo) GetByUserID(userID uuid.UUID) (*resume.GeneratedResume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

type fakeProfiles map[uuid.UUID]*user.Profile

func (f fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*user.Profile, error) {
	p, ok := f[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return p, nil
}

type fakeDetails map[uuid.UUID]*candidate.CandidateDetails

func (f fakeDetails) GetDetails(_ context.Context, id uuid.UUID) (*candidate.CandidateDetails, error) {
	d, ok := f[id]
	if !ok {
		return nil, candidate.ErrDetailsNotFound
	}
	return d, nil
}

type fakeResults map[uuid.UUID][]*quiz.QuizResult

func (f fakeResults) ListResults(_ context.Context, id uuid.UUID) ([]*quiz.QuizResult, error) {
	return f[id], nil
}

func result(quizType, domainID, domainName string, score, total, pct int) *quiz.QuizResult {
	return &quiz.QuizResult{
		ID:             uuid.New(),
		QuizType:       quizType,
		DomainID:       domainID,
		DomainName:     domainName,
		Score:          score,
		TotalQuestions: total,
		Percentage:     pct,
		CompletedAt:    time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBadgeAndLevelThresholds(t *testing.T) {
	assert.Equal(t, resume.BadgeGold, resume.BadgeFor(80))
	assert.Equal(t, resume.BadgeSilver, resume.BadgeFor(79))
	assert.Equal(t, resume.BadgeSilver, resume.BadgeFor(70))
	assert.Equal(t, resume.BadgeBronze, resume.BadgeFor(69))

	assert.Equal(t, "Expert", resume.AssessmentLevel(95))
	assert.Equal(t, "Proficient", resume.AssessmentLevel(70))
	assert.Equal(t, "Competent", resume.AssessmentLevel(50))
	assert.Equal(t, "Developing", resume.AssessmentLevel(49))
}

func TestBuild(t *testing.T) {
	years := 4
	p := user.ProfileResponse{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	d := &candidate.CandidateDetails{
		Phone:           "555-0100",
		CurrentPosition: "Engineer",
		ExperienceYears: &years,
		Skills:          []string{"Go", "python"},
		GithubProfile:   "https://github.com/ada",
	}
	results := []*quiz.QuizResult{
		result("cognitive", "python", "Python", 9, 10, 90),
		result("sensory", "webdev", "", 7, 10, 70),
		result("motor", "networking", "Networking", 3, 10, 30),
		result("cognitive", "algorithms", "Algorithms", 8, 10, 80),
		result("cognitive", "java", "Java", 15, 20, 75),
	}

	data := resume.Build(time.Now(), p, d, results)

	assert.Equal(t, "Ada Lovelace", data.PersonalInfo.Name)
	assert.Equal(t, 4, data.PersonalInfo.ExperienceYears)
	assert.Equal(t, "https://github.com/ada", data.PersonalInfo.Github)

	// python is already listed, in another case
	assert.Equal(t, []string{"Go", "python", "Webdev", "Algorithms", "Java"}, data.Skills)

	require.Len(t, data.Achievements, 4)
	assert.Equal(t, "Excellent Performance in cognitive", data.Achievements[0].Title)
	assert.Equal(t, "Scored 90% (9/10) in Python", data.Achievements[0].Description)
	assert.Equal(t, "excellent", data.Achievements[0].Level)
	assert.Equal(t, "Strong Performance in sensory", data.Achievements[1].Title)
	assert.Equal(t, "good", data.Achievements[1].Level)

	require.Len(t, data.Certifications, 5)
	assert.Equal(t, "Motor Assessment - Networking", data.Certifications[2].Name)
	assert.Equal(t, "30%", data.Certifications[2].Score)
	assert.Equal(t, resume.BadgeBronze, data.Certifications[2].Badge)

	require.Len(t, data.TopPerformances, 3)
	assert.Equal(t, 90, data.TopPerformances[0].Percentage)
	assert.Equal(t, 80, data.TopPerformances[1].Percentage)
	assert.Equal(t, 75, data.TopPerformances[2].Percentage)
	assert.Equal(t, "Expert", data.TopPerformances[0].Level)
}

func TestBuildWithoutResults(t *testing.T) {
	data := resume.Build(time.Now(), user.ProfileResponse{FirstName: "Solo"}, nil, nil)

	assert.Equal(t, "Solo", data.PersonalInfo.Name)
	assert.Empty(t, data.Skills)
	assert.NotNil(t, data.Achievements)
	assert.NotNil(t, data.TopPerformances)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "resume-ada-lovelace.html", resume.Filename("Ada  Lovelace"))
	assert.Equal(t, "resume-candidate.html", resume.Filename(" "))
}

func TestRenderEscapesFields(t *testing.T) {
	data := resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{Name: "Eve", Bio: "<script>alert(1)</script>"},
		Skills:       []string{"Go"},
	}
	body, err := resume.Render(data)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "<h1>Eve</h1>")
	assert.Contains(t, html, `<span class="skill">Go</span>`)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "#2563eb")
}

type fixture struct {
	userID  uuid.UUID
	details fakeDetails
	service resume.Service
}

func newFixture() *fixture {
	id := uuid.New()
	profiles := fakeProfiles{id: {UserID: id, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: user.RoleCandidate}}
	details := fakeDetails{}
	results := fakeResults{id: {result("cognitive", "python", "Python", 9, 10, 90)}}
	repo := &memRepo{rows: map[uuid.UUID]*resume.GeneratedResume{}}

	return &fixture{
		userID:  id,
		details: details,
		service: resume.NewService(repo, profiles, details, results),
	}
}

func TestGenerateRequiresDetails(t *testing.T) {
	f := newFixture()

	_, err := f.service.Generate(context.Background(), f.userID)
	assert.ErrorIs(t, err, resume.ErrProfileIncomplete)

	_, err = f.service.Get(context.Background(), f.userID)
	assert.ErrorIs(t, err, resume.ErrResumeNotFound)
}

func TestGenerateThenGet(t *testing.T) {
	f := newFixture()
	f.details[f.userID] = &candidate.CandidateDetails{UserID: f.userID, Skills: []string{"Go"}}

	data, err := f.service.Generate(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, data.Certifications, 1)

	stored, err := f.service.Get(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, data.Skills, stored.Skills)

	name, body, err := f.service.Download(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "resume-ada-lovelace.html", name)
	assert.True(t, strings.Contains(string(body), "Cognitive Assessment - Python"))
}

func TestHandlerDownload(t *testing.T) {
	f := newFixture()
	f.details[f.userID] = &candidate.CandidateDetails{UserID: f.userID}
	h := resume.NewHandler(f.service)
	routes := resume.Routes(h)

	ctx := auth.WithClaims(context.Background(), &auth.Claims{UserID: f.userID.String(), Role: string(user.RoleCandidate)})

	req := httptest.NewRequest(http.MethodGet, "/me/download", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/me", nil).WithContext(ctx)
	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/me/download", nil).WithContext(ctx)
	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-ada-lovelace.html")
}

func TestHandlerRejectsMissingClaims(t *testing.T) {
	f := newFixture()
	routes := resume.Routes(resume.NewHandler(f.service))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
