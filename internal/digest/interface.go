package digest

import (
	"context"

	"checkey/internal/model"
)

// UseCase defines the business logic interface for daily digests.
type UseCase interface {
	// BuildToday assembles today's digest for the scoped user.
	BuildToday(ctx context.Context, sc model.Scope) (Digest, error)
}
