package usecase

import (
	"admin-console/internal/console"
	"admin-console/internal/console/repository"
	"admin-console/pkg/log"
)

// implUseCase is the private implementation of console.Commands.
type implUseCase[T console.Record] struct {
	repo repository.Repository[T]
	n    console.Notifier
	l    log.Logger
	name string
}

var _ console.Commands[console.Record] = (*implUseCase[console.Record])(nil)

// New creates the mutation commands of one entity.
func New[T console.Record](name string, repo repository.Repository[T], n console.Notifier, l log.Logger) *implUseCase[T] {
	return &implUseCase[T]{
		repo: repo,
		n:    n,
		l:    l,
		name: name,
	}
}
