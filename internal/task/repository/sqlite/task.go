package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checkey/internal/model"
	"checkey/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:                       uuid.NewString(),
		UserID:                   opt.UserID,
		Title:                    opt.Title,
		DueDate:                  opt.DueDate,
		EstimatedDurationMinutes: opt.EstimatedDurationMinutes,
		EstimateSource:           opt.EstimateSource,
		Status:                   model.TaskStatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, userID, taskID string) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", opt.UserID)

	if opt.Status != "" {
		q = q.Where("status = ?", opt.Status)
	}
	if opt.DueBefore != nil {
		if opt.IncludeUndated {
			q = q.Where("due_date < ? OR due_date IS NULL", *opt.DueBefore)
		} else {
			q = q.Where("due_date < ?", *opt.DueBefore)
		}
	}
	if opt.MissingEstimate {
		q = q.Where("estimated_duration_minutes <= 0")
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}

	var tasks []model.Task
	if err := q.Order("due_date IS NULL, due_date ASC, updated_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, userID, taskID string, patch repository.UpdateTaskPatch) (model.Task, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if patch.EstimatedDurationMinutes != nil {
		updates["estimated_duration_minutes"] = *patch.EstimatedDurationMinutes
	}
	if patch.EstimateSource != nil {
		updates["estimate_source"] = *patch.EstimateSource
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if len(updates) == 0 {
		return r.GetTask(ctx, userID, taskID)
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND id = ?", userID, taskID).
		Updates(updates)
	if res.Error != nil {
		return model.Task{}, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return r.GetTask(ctx, userID, taskID)
}

func (r *implRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ListTaskUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", model.TaskStatusPending).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list task user ids: %w", err)
	}
	return ids, nil
}
