package candidate

import "gorm.io/gorm"

type CandidateContainer struct {
	Repo    CandidateRepository
	Service CandidateService
	Handler *Handler
}

func NewCandidateContainer(db *gorm.DB, profiles Profiles) *CandidateContainer {
	repo := NewRepository(db)
	service := NewService(repo, profiles)
	handler := NewHandler(service)

	return &CandidateContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
