package quiz_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() *aiquiz.QuizData {
	q := func(text string, correct int) aiquiz.QuizQuestion {
		return aiquiz.QuizQuestion{Question: text, Options: []string{"a", "b", "c", "d"}, CorrectAnswer: correct}
	}
	return &aiquiz.QuizData{Title: "Go Quiz", Questions: []aiquiz.QuizQuestion{q("one", 0), q("two", 1), q("three", 2)}}
}

func sessionInQuiz(t *testing.T) *quiz.Session {
	t.Helper()
	s := quiz.NewSession(uuid.New(), catalog.SourceGenerated)
	require.NoError(t, s.SelectCategory("programming-development"))
	require.NoError(t, s.BeginGeneration(catalog.Domain{ID: "go", Name: "Go", CategoryID: "programming-development"}))
	require.NoError(t, s.CompleteGeneration(threeQuestions()))
	return s
}

func TestSessionHappyPath(t *testing.T) {
	s := sessionInQuiz(t)
	assert.Equal(t, quiz.StateQuiz, s.State)
	assert.Equal(t, 0, s.Index)

	done, err := s.Answer(0)
	require.NoError(t, err)
	assert.False(t, done)
	done, err = s.Answer(3)
	require.NoError(t, err)
	assert.False(t, done)
	done, err = s.Answer(2)
	require.NoError(t, err)
	assert.True(t, done)

	assert.Equal(t, quiz.StateResults, s.State)
	assert.Equal(t, []int{0, 3, 2}, s.Answers)
	require.NotNil(t, s.Result)
	assert.Equal(t, 2, s.Result.Score)
	assert.Equal(t, 67, s.Result.Percentage)
	assert.Equal(t, []bool{true, false, true}, s.Result.CorrectAnswers)
}

func TestSessionRejectsAnswersAfterResults(t *testing.T) {
	s := sessionInQuiz(t)
	for _, a := range []int{0, 1, 2} {
		_, err := s.Answer(a)
		require.NoError(t, err)
	}

	_, err := s.Answer(1)
	assert.ErrorIs(t, err, quiz.ErrSessionCompleted)
	assert.Len(t, s.Answers, 3)
}

func TestSessionGenerationFailure(t *testing.T) {
	s := quiz.NewSession(uuid.New(), catalog.SourceGenerated)
	require.NoError(t, s.SelectCategory("cloud-devops"))
	require.NoError(t, s.BeginGeneration(catalog.Domain{ID: "docker", Name: "Docker"}))

	t.Run("BlocksOtherTransitions", func(t *testing.T) {
		assert.ErrorIs(t, s.Back(), quiz.ErrGenerationInProgress)
		assert.ErrorIs(t, s.Retake(), quiz.ErrGenerationInProgress)
		_, err := s.Answer(0)
		assert.ErrorIs(t, err, quiz.ErrGenerationInProgress)
	})

	require.NoError(t, s.FailGeneration(errors.New("Rate limit exceeded")))
	assert.Equal(t, quiz.StateDomainSelection, s.State)
	assert.Equal(t, "cloud-devops", s.CategoryID)
	assert.Empty(t, s.DomainID)
	assert.Equal(t, "Rate limit exceeded", s.Error)

	require.NoError(t, s.BeginGeneration(catalog.Domain{ID: "docker", Name: "Docker"}))
	assert.Empty(t, s.Error)
}

func TestSessionRetakeClearsAbandonedGeneration(t *testing.T) {
	s := quiz.NewSession(uuid.New(), catalog.SourceGenerated)
	require.NoError(t, s.SelectCategory("cloud-devops"))
	require.NoError(t, s.BeginGeneration(catalog.Domain{ID: "docker", Name: "Docker"}))

	assert.False(t, s.GenerationStale(time.Now()))
	assert.ErrorIs(t, s.Retake(), quiz.ErrGenerationInProgress)

	s.UpdatedAt = time.Now().Add(-quiz.GenerationTimeout - time.Second)
	assert.True(t, s.GenerationStale(time.Now()))
	require.NoError(t, s.Retake())
	assert.Equal(t, quiz.StateCategorySelection, s.State)
	assert.Empty(t, s.DomainID)
}

func TestSessionCompleteGenerationValidates(t *testing.T) {
	s := quiz.NewSession(uuid.New(), catalog.SourceGenerated)
	require.NoError(t, s.SelectCategory("c"))
	require.NoError(t, s.BeginGeneration(catalog.Domain{ID: "d"}))

	err := s.CompleteGeneration(&aiquiz.QuizData{})
	assert.ErrorIs(t, err, aiquiz.ErrNoQuestions)
	assert.Equal(t, quiz.StateGenerating, s.State)
}

func TestSessionInvalidTransitions(t *testing.T) {
	s := quiz.NewSession(uuid.New(), catalog.SourceBank)

	assert.ErrorIs(t, s.Back(), quiz.ErrInvalidTransition)
	assert.ErrorIs(t, s.BeginGeneration(catalog.Domain{ID: "python"}), quiz.ErrInvalidTransition)
	_, err := s.Answer(0)
	assert.ErrorIs(t, err, quiz.ErrInvalidTransition)
	assert.ErrorIs(t, s.CompleteGeneration(threeQuestions()), quiz.ErrInvalidTransition)

	require.NoError(t, s.SelectCategory("cognitive"))
	assert.ErrorIs(t, s.SelectCategory("sensory"), quiz.ErrInvalidTransition)

	require.NoError(t, s.Back())
	assert.Equal(t, quiz.StateCategorySelection, s.State)
	assert.Empty(t, s.CategoryID)
}

func TestSessionAnswerRange(t *testing.T) {
	s := sessionInQuiz(t)
	for _, bad := range []int{-1, 4} {
		_, err := s.Answer(bad)
		assert.ErrorIs(t, err, quiz.ErrInvalidAnswer)
	}
	assert.Empty(t, s.Answers)
}

func TestSessionRetakeResets(t *testing.T) {
	s := sessionInQuiz(t)
	_, err := s.Answer(1)
	require.NoError(t, err)

	require.NoError(t, s.Retake())
	assert.Equal(t, quiz.StateCategorySelection, s.State)
	assert.Empty(t, s.CategoryID)
	assert.Empty(t, s.DomainID)
	assert.Nil(t, s.Quiz)
	assert.Nil(t, s.Result)
	assert.Empty(t, s.Answers)
	assert.Equal(t, 0, s.Index)
}

func TestViewHidesAnswersUntilResults(t *testing.T) {
	s := sessionInQuiz(t)

	v := quiz.ToView(s)
	require.NotNil(t, v.CurrentQuestion)
	assert.Equal(t, "one", v.CurrentQuestion.Question)
	assert.Equal(t, 3, v.TotalQuestions)
	assert.Nil(t, v.Review)

	for _, a := range []int{0, 1, 2} {
		_, err := s.Answer(a)
		require.NoError(t, err)
	}
	v = quiz.ToView(s)
	assert.Nil(t, v.CurrentQuestion)
	assert.Len(t, v.Review, 3)
}
