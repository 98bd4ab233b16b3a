package usecase

import (
	"context"
	"fmt"
	"time"

	"checkey/internal/model"
	"checkey/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock estimator returning a fixed value
type mockEstimator struct {
	minutes int
}

func (m *mockEstimator) EstimateDuration(title string) int {
	return m.minutes
}

// In-memory repository for testing
type mockRepository struct {
	tasks     []model.Task
	schedules []model.Schedule
	seq       int

	failCreateTask     bool
	failCreateSchedule bool
}

func (m *mockRepository) nextID() string {
	m.seq++
	return fmt.Sprintf("id-%d", m.seq)
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreateTask {
		return model.Task{}, fmt.Errorf("task insert failed")
	}
	t := model.Task{
		ID:                       m.nextID(),
		UserID:                   opt.UserID,
		Title:                    opt.Title,
		DueDate:                  opt.DueDate,
		EstimatedDurationMinutes: opt.EstimatedDurationMinutes,
		EstimateSource:           opt.EstimateSource,
		Status:                   model.TaskStatusPending,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepository) GetTask(ctx context.Context, userID, taskID string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == taskID {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.MissingEstimate && t.EstimatedDurationMinutes > 0 {
			continue
		}
		if opt.DueBefore != nil {
			if t.DueDate == nil {
				if !opt.IncludeUndated {
					continue
				}
			} else if !t.DueDate.Before(*opt.DueBefore) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, userID, taskID string, patch repository.UpdateTaskPatch) (model.Task, error) {
	for i, t := range m.tasks {
		if t.UserID != userID || t.ID != taskID {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
		if patch.EstimatedDurationMinutes != nil {
			t.EstimatedDurationMinutes = *patch.EstimatedDurationMinutes
		}
		if patch.EstimateSource != nil {
			t.EstimateSource = *patch.EstimateSource
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		t.UpdatedAt = time.Now()
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == taskID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepository) CreateSchedule(ctx context.Context, opt repository.CreateScheduleOptions) (model.Schedule, error) {
	if m.failCreateSchedule {
		return model.Schedule{}, fmt.Errorf("schedule insert failed")
	}
	remind := opt.RemindMinutesBefore
	if remind <= 0 {
		remind = model.DefaultRemindMinutesBefore
	}
	s := model.Schedule{
		ID:                  m.nextID(),
		UserID:              opt.UserID,
		Title:               opt.Title,
		StartTime:           opt.StartTime,
		RemindMinutesBefore: remind,
	}
	m.schedules = append(m.schedules, s)
	return s, nil
}

func (m *mockRepository) ListSchedulesInRange(ctx context.Context, opt repository.ScheduleRangeOptions) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range m.schedules {
		if s.UserID != opt.UserID || s.StartTime == nil {
			continue
		}
		if s.StartTime.Before(opt.From) || !s.StartTime.Before(opt.To) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *mockRepository) ListTaskUserIDs(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, t := range m.tasks {
		if t.Status != model.TaskStatusPending || seen[t.UserID] {
			continue
		}
		seen[t.UserID] = true
		out = append(out, t.UserID)
	}
	return out, nil
}

func newTestUseCase(repo *mockRepository, estimator *mockEstimator) *implUseCase {
	return New(&mockLogger{}, repo, nil, estimator, "Asia/Seoul")
}
