package model

import "time"

// Task statuses.
const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
)

// Estimate sources, tracked so heuristic backfills are distinguishable from
// model-provided values.
const (
	EstimateSourceModel     = "model"
	EstimateSourceHeuristic = "heuristic"
)

// Task is a persisted todo record created from a confirmed card.
type Task struct {
	ID                       string     `gorm:"primaryKey;size:36" json:"id"`
	UserID                   string     `gorm:"index;size:64" json:"user_id"`
	Title                    string     `json:"title"`
	DueDate                  *time.Time `json:"due_date,omitempty"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes"`
	EstimateSource           string     `gorm:"size:16" json:"estimate_source,omitempty"`
	Status                   string     `gorm:"index;size:16" json:"status"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// Pending reports whether the task still needs doing.
func (t Task) Pending() bool {
	return t.Status == TaskStatusPending
}
