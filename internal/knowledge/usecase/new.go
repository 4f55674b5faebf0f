package usecase

import (
	"personal-assistant/internal/knowledge"
	"personal-assistant/internal/knowledge/repository"
	"personal-assistant/pkg/log"
)

// implUseCase is the private implementation of knowledge.UseCase.
type implUseCase struct {
	repo repository.VectorRepository
	l    log.Logger
}

var _ knowledge.UseCase = (*implUseCase)(nil)

// New creates a new knowledge UseCase implementation.
func New(l log.Logger, repo repository.VectorRepository) *implUseCase {
	if repo == nil {
		panic("knowledge/usecase: vector repository is required")
	}
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
