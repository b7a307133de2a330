package assistant

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer() *Container {
	service := NewService(nil)
	return &Container{
		Handler: NewHandler(service),
		Service: service,
	}
}
