package usecase

import (
	"time"

	"checkey/internal/task"
	"checkey/internal/task/repository"
	"checkey/pkg/gcalendar"
	pkgLog "checkey/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	calendar  *gcalendar.Client
	estimator task.Estimator
	timezone  string
	now       func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil when
// calendar export is not configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar *gcalendar.Client,
	estimator task.Estimator,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		calendar:  calendar,
		estimator: estimator,
		timezone:  timezone,
		now:       time.Now,
	}
}
