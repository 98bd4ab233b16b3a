package repository

import "time"

// CreateTaskOptions holds the parameters for creating a task record.
type CreateTaskOptions struct {
	UserID                   string
	Title                    string
	DueDate                  *time.Time
	EstimatedDurationMinutes int
	EstimateSource           string // model.EstimateSourceModel or model.EstimateSourceHeuristic
}

// CreateScheduleOptions holds the parameters for creating a schedule record.
type CreateScheduleOptions struct {
	UserID              string
	Title               string
	StartTime           *time.Time
	RemindMinutesBefore int // 0 means model.DefaultRemindMinutesBefore
}

// ListTasksOptions holds the filters for listing tasks.
type ListTasksOptions struct {
	UserID          string
	Status          string     // filter by status; "" means any
	DueBefore       *time.Time // include tasks due strictly before this instant
	IncludeUndated  bool       // with DueBefore set, also include tasks with no due date
	MissingEstimate bool       // only tasks without a duration estimate
	Limit           int        // 0 means no limit
}

// UpdateTaskPatch holds the mutable task fields; nil fields stay untouched.
type UpdateTaskPatch struct {
	Title                    *string
	DueDate                  *time.Time
	EstimatedDurationMinutes *int
	EstimateSource           *string
	Status                   *string
}

// ScheduleRangeOptions selects schedules starting inside [From, To).
type ScheduleRangeOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
