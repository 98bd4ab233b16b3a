package task

import (
	"context"
	"time"

	"checkey/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ConfirmCard persists a confirmed extraction card as tasks and/or a
	// schedule, filling missing duration estimates heuristically.
	ConfirmCard(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)

	// ListPending returns the user's pending tasks, due-date ascending with
	// undated tasks last.
	ListPending(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// BackfillEstimates fills heuristic duration estimates into pending
	// tasks that have none.
	BackfillEstimates(ctx context.Context, sc model.Scope) (BackfillOutput, error)

	// Postpone moves a task's due date.
	Postpone(ctx context.Context, sc model.Scope, input PostponeInput) (model.Task, error)

	// SetDone marks a task completed.
	SetDone(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)

	// Remove deletes a task permanently.
	Remove(ctx context.Context, sc model.Scope, taskID string) error

	// SchedulesInRange returns the user's schedules starting inside [from, to).
	SchedulesInRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error)
}

// Estimator supplies a duration guess for tasks saved without one.
type Estimator interface {
	EstimateDuration(title string) int
}
