package repository

import (
	"context"
	"errors"

	"checkey/internal/model"
)

// ErrNotFound is returned when a record does not exist for the given user.
var ErrNotFound = errors.New("record not found")

// Repository is the interface for task and schedule persistence.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, patch UpdateTaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error

	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (model.Schedule, error)
	ListSchedulesInRange(ctx context.Context, opt ScheduleRangeOptions) ([]model.Schedule, error)

	// ListTaskUserIDs returns the distinct owners of pending tasks, for
	// digest fan-out.
	ListTaskUserIDs(ctx context.Context) ([]string, error)
}
