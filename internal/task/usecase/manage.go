package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/internal/task/repository"
)

// ListPending returns the user's pending tasks ordered due-date ascending
// with undated tasks last.
func (uc *implUseCase) ListPending(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if sc.UserID == "" {
		return nil, task.ErrNotAuthenticated
	}
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		Status: model.TaskStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}
	return tasks, nil
}

// BackfillEstimates fills heuristic estimates into pending tasks that have
// none, so digests never present a task without a duration.
func (uc *implUseCase) BackfillEstimates(ctx context.Context, sc model.Scope) (task.BackfillOutput, error) {
	if sc.UserID == "" {
		return task.BackfillOutput{}, task.ErrNotAuthenticated
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:          sc.UserID,
		Status:          model.TaskStatusPending,
		MissingEstimate: true,
	})
	if err != nil {
		return task.BackfillOutput{}, fmt.Errorf("list tasks missing estimates: %w", err)
	}

	out := task.BackfillOutput{}
	for _, t := range tasks {
		minutes := uc.estimator.EstimateDuration(t.Title)
		source := model.EstimateSourceHeuristic
		_, err := uc.repo.UpdateTask(ctx, sc.UserID, t.ID, repository.UpdateTaskPatch{
			EstimatedDurationMinutes: &minutes,
			EstimateSource:           &source,
		})
		if err != nil {
			uc.l.Warnf(ctx, "BackfillEstimates: failed to update task %s: %v", t.ID, err)
			continue
		}
		out.Updated++
	}

	if out.Updated > 0 {
		uc.l.Infof(ctx, "BackfillEstimates: user=%s updated=%d", sc.UserID, out.Updated)
	}
	return out, nil
}

// Postpone moves a task's due date.
func (uc *implUseCase) Postpone(ctx context.Context, sc model.Scope, input task.PostponeInput) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrNotAuthenticated
	}
	due := input.NewDueDate
	updated, err := uc.repo.UpdateTask(ctx, sc.UserID, input.TaskID, repository.UpdateTaskPatch{
		DueDate: &due,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("postpone task: %w", err)
	}
	return updated, nil
}

// SetDone marks a task completed.
func (uc *implUseCase) SetDone(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrNotAuthenticated
	}
	status := model.TaskStatusDone
	updated, err := uc.repo.UpdateTask(ctx, sc.UserID, taskID, repository.UpdateTaskPatch{
		Status: &status,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("set task done: %w", err)
	}
	return updated, nil
}

// Remove deletes a task permanently.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, taskID string) error {
	if sc.UserID == "" {
		return task.ErrNotAuthenticated
	}
	err := uc.repo.DeleteTask(ctx, sc.UserID, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	return nil
}

// SchedulesInRange returns the user's schedules starting inside [from, to).
func (uc *implUseCase) SchedulesInRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error) {
	if sc.UserID == "" {
		return nil, task.ErrNotAuthenticated
	}
	schedules, err := uc.repo.ListSchedulesInRange(ctx, repository.ScheduleRangeOptions{
		UserID: sc.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}
