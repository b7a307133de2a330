package quiz

import (
	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/saulo-duarte/neurobridge-lambda/internal/queue"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
	Worker  *FeedbackWorker
}

func NewQuizContainer(db *gorm.DB, store cache.Store, cat Catalog, ai aiquiz.Service, publisher queue.Publisher, notifier notify.Notifier) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, NewSessionStore(store), cat, ai, publisher)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
		Worker:  NewFeedbackWorker(repo, ai, notifier),
	}
}
