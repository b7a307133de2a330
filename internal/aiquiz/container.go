package aiquiz

import "github.com/saulo-duarte/neurobridge-lambda/internal/llm"

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(client llm.Client) *AIQuizContainer {
	service := NewService(client)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
