package report

import (
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/saulo-duarte/neurobridge-lambda/internal/queue"
)

type Container struct {
	Service Service
	Handler *Handler
	Worker  *ShareWorker
}

func NewContainer(candidates Candidates, remarks Remarks, publisher queue.Publisher, notifier notify.Notifier) *Container {
	service := NewService(candidates, remarks, publisher)

	return &Container{
		Service: service,
		Handler: NewHandler(service),
		Worker:  NewShareWorker(notifier),
	}
}
