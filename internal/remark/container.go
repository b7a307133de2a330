package remark

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, candidates Candidates) *Container {
	repo := NewRepository(db)
	service := NewService(repo, candidates)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
