package analytics

import "github.com/saulo-duarte/neurobridge-lambda/internal/cache"

type Container struct {
	Service Service
	Handler *Handler
}

func NewContainer(candidates Candidates, results Results, store cache.Store) *Container {
	service := NewService(candidates, results, store)

	return &Container{
		Service: service,
		Handler: NewHandler(service),
	}
}
