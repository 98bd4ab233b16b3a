package task

import (
	"time"

	"checkey/internal/extract"
	"checkey/internal/model"
)

// ConfirmInput is the input for persisting a confirmed card.
// UserID is carried in model.Scope, not here.
type ConfirmInput struct {
	Card extract.ConfirmationCard
}

// ConfirmOutput reports what a confirmation actually created.
type ConfirmOutput struct {
	Tasks        []model.Task
	Schedule     *model.Schedule
	CalendarLink string // deep link to the exported calendar event (may be empty)
}

// PostponeInput is the input for moving a task's due date.
type PostponeInput struct {
	TaskID     string
	NewDueDate time.Time
}

// BackfillOutput reports how many tasks received a heuristic estimate.
type BackfillOutput struct {
	Updated int
}
