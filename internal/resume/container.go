package resume

import "gorm.io/gorm"

type Container struct {
	Service Service
	Handler *Handler
}

func NewContainer(db *gorm.DB, profiles Profiles, details Details, results Results) *Container {
	service := NewService(NewRepository(db), profiles, details, results)

	return &Container{
		Service: service,
		Handler: NewHandler(service),
	}
}
