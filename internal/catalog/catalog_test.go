package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBank(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	cats, err := c.Categories(catalog.SourceBank)
	require.NoError(t, err)
	ids := make([]string, 0, len(cats))
	for _, cat := range cats {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{"cognitive", "sensory", "motor"}, ids)

	doms, err := c.Domains(catalog.SourceBank, "cognitive")
	require.NoError(t, err)
	require.NotEmpty(t, doms)
	assert.Equal(t, "python", doms[0].ID)

	quiz, err := c.BankQuiz("python")
	require.NoError(t, err)
	assert.NoError(t, aiquiz.ValidateQuiz(quiz))
	assert.Equal(t, doms[0].QuestionCount, len(quiz.Questions))
}

func TestBankQuizIsACopy(t *testing.T) {
	c := catalog.MustLoad()

	first, err := c.BankQuiz("networking")
	require.NoError(t, err)
	first.Questions[0].Options[0] = "mutated"
	first.Questions[0].CorrectAnswer = 3

	second, err := c.BankQuiz("networking")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Questions[0].Options[0])
}

func TestGeneratedSource(t *testing.T) {
	c := catalog.MustLoad()

	cats, err := c.Categories(catalog.SourceGenerated)
	require.NoError(t, err)
	assert.Len(t, cats, 10)

	doms, err := c.Domains(catalog.SourceGenerated, "programming-development")
	require.NoError(t, err)
	assert.NotEmpty(t, doms)

	d, err := c.Domain(catalog.SourceGenerated, "python")
	require.NoError(t, err)
	assert.Equal(t, "programming-development", d.CategoryID)

	_, err = c.BankQuiz("kubernetes")
	assert.ErrorIs(t, err, catalog.ErrDomainNotFound)
}

func TestLookupErrors(t *testing.T) {
	c := catalog.MustLoad()

	_, err := c.Categories(catalog.Source("nope"))
	assert.ErrorIs(t, err, catalog.ErrUnknownSource)

	_, err = c.Domains(catalog.SourceBank, "nope")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)

	_, err = c.Domain(catalog.SourceBank, "nope")
	assert.ErrorIs(t, err, catalog.ErrDomainNotFound)
}

func TestRoutes(t *testing.T) {
	router := catalog.Routes(catalog.NewHandler(catalog.MustLoad()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generated/categories/cloud-devops/domains", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doms []catalog.Domain
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doms))
	assert.NotEmpty(t, doms)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown/categories", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
