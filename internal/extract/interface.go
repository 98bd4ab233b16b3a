package extract

import (
	"context"

	"checkey/internal/model"
)

// UseCase is the business logic interface for the extraction domain.
type UseCase interface {
	// Extract runs the full pipeline over one utterance: remote suggestion,
	// local temporal resolution, oversplit repair, fallbacks, normalization.
	// It never fails on malformed remote output; only a blank utterance is
	// an error.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ParsedEntity, error)

	// ProjectToCard derives the user-facing confirmation card from a parsed
	// entity.
	ProjectToCard(entity ParsedEntity) ConfirmationCard

	// EstimateDuration maps a task title to an estimated effort in minutes.
	// This heuristic is the single duration authority for the whole system.
	EstimateDuration(title string) int
}

// Completer is the remote text-completion collaborator. Implementations must
// accept a system instruction plus one user message and return text parseable
// as a single JSON object.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
