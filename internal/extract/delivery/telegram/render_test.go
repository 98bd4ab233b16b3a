package telegram

import (
	"strings"
	"testing"
	"time"

	"checkey/internal/extract"
	"checkey/internal/model"
	"checkey/internal/task"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestRenderCardBoth(t *testing.T) {
	loc := seoul(t)
	start := time.Date(2026, 3, 3, 15, 0, 0, 0, loc)
	fifteen := 15

	got := renderCard(extract.ConfirmationCard{
		Kind:      extract.KindBoth,
		Title:     "병원 방문",
		StartTime: &start,
		Tasks: []extract.TaskFragment{
			{Title: "약 타오기"},
			{Title: "보험 청구하기", EstimatedDurationMinutes: &fifteen},
		},
	}, loc)

	for _, want := range []string{
		"종류: 일정 + 할 일",
		"제목: 병원 방문",
		"시작: 3/3 15:00",
		" 1. 약 타오기",
		" 2. 보험 청구하기 (15분)",
		"\"저장\"",
		"\"취소\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderCard missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCardTaskOnly(t *testing.T) {
	loc := seoul(t)
	got := renderCard(extract.ConfirmationCard{
		Kind:  extract.KindTask,
		Title: "우유 사기",
		Tasks: []extract.TaskFragment{{Title: "우유 사기"}},
	}, loc)

	if !strings.Contains(got, "종류: 할 일") {
		t.Errorf("renderCard kind line wrong:\n%s", got)
	}
	if strings.Contains(got, "시작:") {
		t.Errorf("task-only card must not show a start time:\n%s", got)
	}
}

func TestRenderSaved(t *testing.T) {
	loc := seoul(t)
	start := time.Date(2026, 3, 3, 15, 0, 0, 0, loc)
	due := time.Date(2026, 3, 2, 23, 59, 59, 0, loc)

	got := renderSaved(task.ConfirmOutput{
		Schedule: &model.Schedule{
			Title:               "미팅",
			StartTime:           &start,
			RemindMinutesBefore: 10,
		},
		Tasks: []model.Task{
			{Title: "자료 보내기", EstimatedDurationMinutes: 10, DueDate: &due},
		},
		CalendarLink: "https://calendar.example/evt",
	}, loc)

	for _, want := range []string{
		"✅ 저장했어요!",
		"📅 일정: 미팅 (3/3 15:00, 10분 전 알림)",
		"https://calendar.example/evt",
		"📝 할 일 1: 자료 보내기 · 10분 (마감 3/2 23:59)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderSaved missing %q:\n%s", want, got)
		}
	}
}
