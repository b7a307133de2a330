package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
)

//go:embed data/*.json
var dataFS embed.FS

type Source string

const (
	SourceBank      Source = "bank"
	SourceGenerated Source = "generated"
)

var AllSources = []Source{SourceBank, SourceGenerated}

func (s Source) IsValid() bool {
	for _, v := range AllSources {
		if s == v {
			return true
		}
	}
	return false
}

var (
	ErrUnknownSource    = errors.New("unknown quiz source")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDomainNotFound   = errors.New("domain not found")
)

type Domain struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryID    string `json:"category_id"`
	QuestionCount int    `json:"question_count,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DomainCount int    `json:"domain_count"`
}

type bankFile struct {
	QuizTypes []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Domains     []struct {
			ID          string                `json:"id"`
			Name        string                `json:"name"`
			Description string                `json:"description"`
			Questions   []aiquiz.QuizQuestion `json:"questions"`
		} `json:"domains"`
	} `json:"quiz_types"`
}

type skillsFile struct {
	Categories []struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Domains     []Domain `json:"domains"`
	} `json:"categories"`
}

type index struct {
	categories []Category
	domains    map[string][]Domain
	byID       map[string]Domain
}

// Catalog holds the static question bank and the generated-skill taxonomy.
// It is immutable after Load.
type Catalog struct {
	sources   map[Source]*index
	questions map[string][]aiquiz.QuizQuestion
}

func Load() (*Catalog, error) {
	c := &Catalog{
		sources:   map[Source]*index{},
		questions: map[string][]aiquiz.QuizQuestion{},
	}
	if err := c.loadBank(); err != nil {
		return nil, err
	}
	if err := c.loadSkills(); err != nil {
		return nil, err
	}
	return c, nil
}

func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) loadBank() error {
	raw, err := dataFS.ReadFile("data/question_bank.json")
	if err != nil {
		return err
	}
	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode question bank: %w", err)
	}

	idx := newIndex()
	for _, qt := range f.QuizTypes {
		idx.categories = append(idx.categories, Category{
			ID:          qt.ID,
			Name:        qt.Name,
			Description: qt.Description,
			DomainCount: len(qt.Domains),
		})
		for _, d := range qt.Domains {
			if err := aiquiz.ValidateQuiz(&aiquiz.QuizData{Questions: d.Questions}); err != nil {
				return fmt.Errorf("question bank domain %q: %w", d.ID, err)
			}
			dom := Domain{
				ID:            d.ID,
				Name:          d.Name,
				Description:   d.Description,
				CategoryID:    qt.ID,
				QuestionCount: len(d.Questions),
			}
			idx.add(dom)
			c.questions[d.ID] = d.Questions
		}
	}
	c.sources[SourceBank] = idx
	return nil
}

func (c *Catalog) loadSkills() error {
	raw, err := dataFS.ReadFile("data/skill_domains.json")
	if err != nil {
		return err
	}
	var f skillsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode skill domains: %w", err)
	}

	idx := newIndex()
	for _, cat := range f.Categories {
		idx.categories = append(idx.categories, Category{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			DomainCount: len(cat.Domains),
		})
		for _, d := range cat.Domains {
			d.CategoryID = cat.ID
			idx.add(d)
		}
	}
	c.sources[SourceGenerated] = idx
	return nil
}

func newIndex() *index {
	return &index{domains: map[string][]Domain{}, byID: map[string]Domain{}}
}

func (i *index) add(d Domain) {
	i.domains[d.CategoryID] = append(i.domains[d.CategoryID], d)
	i.byID[d.ID] = d
}

func (c *Catalog) source(s Source) (*index, error) {
	idx, ok := c.sources[s]
	if !ok {
		return nil, ErrUnknownSource
	}
	return idx, nil
}

func (c *Catalog) Categories(s Source) ([]Category, error) {
	idx, err := c.source(s)
	if err != nil {
		return nil, err
	}
	out := make([]Category, len(idx.categories))
	copy(out, idx.categories)
	return out, nil
}

func (c *Catalog) Category(s Source, categoryID string) (Category, error) {
	idx, err := c.source(s)
	if err != nil {
		return Category{}, err
	}
	for _, cat := range idx.categories {
		if cat.ID == categoryID {
			return cat, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

func (c *Catalog) Domains(s Source, categoryID string) ([]Domain, error) {
	idx, err := c.source(s)
	if err != nil {
		return nil, err
	}
	doms, ok := idx.domains[categoryID]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	out := make([]Domain, len(doms))
	copy(out, doms)
	return out, nil
}

func (c *Catalog) Domain(s Source, domainID string) (Domain, error) {
	idx, err := c.source(s)
	if err != nil {
		return Domain{}, err
	}
	d, ok := idx.byID[domainID]
	if !ok {
		return Domain{}, ErrDomainNotFound
	}
	return d, nil
}

// BankQuiz returns a copy of the curated quiz for a bank domain.
func (c *Catalog) BankQuiz(domainID string) (*aiquiz.QuizData, error) {
	d, err := c.Domain(SourceBank, domainID)
	if err != nil {
		return nil, err
	}
	qs := c.questions[domainID]
	out := make([]aiquiz.QuizQuestion, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return &aiquiz.QuizData{Title: d.Name + " Quiz", Questions: out}, nil
}
