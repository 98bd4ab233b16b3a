package usecase

import (
	"time"

	"checkey/internal/task"
	"checkey/pkg/krtime"
	pkgLog "checkey/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	tasks    task.UseCase
	resolver *krtime.Resolver
	now      func() time.Time
}

// New creates a new digest UseCase instance.
func New(l pkgLog.Logger, tasks task.UseCase, resolver *krtime.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		tasks:    tasks,
		resolver: resolver,
		now:      time.Now,
	}
}

// WithClock overrides the "now" provider, for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
