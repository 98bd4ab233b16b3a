package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"checkey/internal/model"
	"checkey/internal/task/repository"
)

func (r *implRepository) CreateSchedule(ctx context.Context, opt repository.CreateScheduleOptions) (model.Schedule, error) {
	remind := opt.RemindMinutesBefore
	if remind <= 0 {
		remind = model.DefaultRemindMinutesBefore
	}

	s := model.Schedule{
		ID:                  uuid.NewString(),
		UserID:              opt.UserID,
		Title:               opt.Title,
		StartTime:           opt.StartTime,
		RemindMinutesBefore: remind,
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Schedule{}, fmt.Errorf("create schedule: %w", err)
	}
	return s, nil
}

func (r *implRepository) ListSchedulesInRange(ctx context.Context, opt repository.ScheduleRangeOptions) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", opt.UserID, opt.From, opt.To).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("list schedules in range: %w", err)
	}
	return schedules, nil
}
