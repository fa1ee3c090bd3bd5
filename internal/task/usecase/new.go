package usecase

import (
	"tasktracker-webui/internal/task/repository"
	"tasktracker-webui/pkg/datetime"
	pkgLog "tasktracker-webui/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TrackerRepository
	composer *datetime.Composer
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TrackerRepository,
	composer *datetime.Composer,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		composer: composer,
	}
}
