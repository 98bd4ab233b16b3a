package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkey/internal/extract"
	"checkey/internal/model"
	"checkey/internal/task"
)

var testScope = model.Scope{UserID: "telegram_42", Username: "tester"}

func kst(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestConfirmCardRequiresIdentity(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockEstimator{minutes: 5})

	_, err := uc.ConfirmCard(context.Background(), model.Scope{}, task.ConfirmInput{
		Card: extract.ConfirmationCard{Kind: extract.KindTask, Title: "장보기"},
	})
	if !errors.Is(err, task.ErrNotAuthenticated) {
		t.Errorf("error = %v, want ErrNotAuthenticated", err)
	}
}

func TestConfirmCardNothingToSave(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, &mockEstimator{minutes: 5})

	_, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{Kind: extract.KindOther},
	})
	if !errors.Is(err, task.ErrNothingToSave) {
		t.Errorf("error = %v, want ErrNothingToSave", err)
	}
}

func TestConfirmCardBoth(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo, &mockEstimator{minutes: 5})

	start := time.Date(2026, 3, 3, 14, 0, 0, 0, kst(t))
	fifteen := 15
	out, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{
			Kind:      extract.KindBoth,
			Title:     "병원 방문",
			StartTime: &start,
			Tasks: []extract.TaskFragment{
				{Title: "약 타오기"},
				{Title: "보험 청구하기", EstimatedDurationMinutes: &fifteen},
			},
		},
	})
	if err != nil {
		t.Fatalf("ConfirmCard returned error: %v", err)
	}

	if out.Schedule == nil {
		t.Fatal("expected a saved schedule")
	}
	if out.Schedule.Title != "병원 방문" {
		t.Errorf("schedule Title = %q", out.Schedule.Title)
	}
	if out.Schedule.RemindMinutesBefore != model.DefaultRemindMinutesBefore {
		t.Errorf("RemindMinutesBefore = %d, want default %d",
			out.Schedule.RemindMinutesBefore, model.DefaultRemindMinutesBefore)
	}

	if len(out.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(out.Tasks))
	}
	if out.Tasks[0].EstimatedDurationMinutes != 5 || out.Tasks[0].EstimateSource != model.EstimateSourceHeuristic {
		t.Errorf("Tasks[0] estimate = (%d, %s), want heuristic 5",
			out.Tasks[0].EstimatedDurationMinutes, out.Tasks[0].EstimateSource)
	}
	if out.Tasks[1].EstimatedDurationMinutes != 15 || out.Tasks[1].EstimateSource != model.EstimateSourceModel {
		t.Errorf("Tasks[1] estimate = (%d, %s), want model 15",
			out.Tasks[1].EstimatedDurationMinutes, out.Tasks[1].EstimateSource)
	}
	if out.Tasks[0].Status != model.TaskStatusPending {
		t.Errorf("Tasks[0].Status = %q, want pending", out.Tasks[0].Status)
	}
}

func TestConfirmCardHeadlineFallback(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo, &mockEstimator{minutes: 5})

	thirty := 30
	due := time.Date(2026, 3, 2, 23, 59, 59, 0, kst(t))
	out, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{
			Kind:                     extract.KindTask,
			Title:                    "보고서 작성",
			DueDate:                  &due,
			EstimatedDurationMinutes: &thirty,
		},
	})
	if err != nil {
		t.Fatalf("ConfirmCard returned error: %v", err)
	}

	if len(out.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1 from the headline", len(out.Tasks))
	}
	got := out.Tasks[0]
	if got.Title != "보고서 작성" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if got.EstimatedDurationMinutes != 30 || got.EstimateSource != model.EstimateSourceModel {
		t.Errorf("estimate = (%d, %s), want model 30", got.EstimatedDurationMinutes, got.EstimateSource)
	}
}

func TestConfirmCardCardDueDateAppliesToFragments(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo, &mockEstimator{minutes: 10})

	due := time.Date(2026, 3, 3, 23, 59, 59, 0, kst(t))
	out, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{
			Kind:    extract.KindTask,
			DueDate: &due,
			Tasks:   []extract.TaskFragment{{Title: "우유 사기"}, {Title: "청소하기"}},
		},
	})
	if err != nil {
		t.Fatalf("ConfirmCard returned error: %v", err)
	}
	for i, saved := range out.Tasks {
		if saved.DueDate == nil || !saved.DueDate.Equal(due) {
			t.Errorf("Tasks[%d].DueDate = %v, want card due date", i, saved.DueDate)
		}
	}
}

func TestConfirmCardPartialFailure(t *testing.T) {
	repo := &mockRepository{failCreateSchedule: true}
	uc := newTestUseCase(repo, &mockEstimator{minutes: 5})

	start := time.Date(2026, 3, 3, 14, 0, 0, 0, kst(t))
	out, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{
			Kind:      extract.KindBoth,
			Title:     "미팅",
			StartTime: &start,
			Tasks:     []extract.TaskFragment{{Title: "자료 보내기"}},
		},
	})
	if err != nil {
		t.Fatalf("expected partial success, got error: %v", err)
	}
	if out.Schedule != nil {
		t.Error("schedule should not have been saved")
	}
	if len(out.Tasks) != 1 {
		t.Errorf("got %d tasks, want the surviving one", len(out.Tasks))
	}
}

func TestConfirmCardTotalFailure(t *testing.T) {
	repo := &mockRepository{failCreateTask: true}
	uc := newTestUseCase(repo, &mockEstimator{minutes: 5})

	_, err := uc.ConfirmCard(context.Background(), testScope, task.ConfirmInput{
		Card: extract.ConfirmationCard{
			Kind:  extract.KindTask,
			Tasks: []extract.TaskFragment{{Title: "장보기"}},
		},
	})
	if err == nil {
		t.Fatal("expected error when nothing could be saved")
	}
}
