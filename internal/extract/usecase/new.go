package usecase

import (
	"time"

	"checkey/internal/extract"
	pkgLog "checkey/pkg/log"
	"checkey/pkg/krtime"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      extract.Completer
	resolver *krtime.Resolver
	now      func() time.Time
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, llm extract.Completer, resolver *krtime.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		resolver: resolver,
		now:      time.Now,
	}
}

// WithClock overrides the "now" provider. Used by tests to pin temporal
// resolution to a fixed reference point.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
