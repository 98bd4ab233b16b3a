package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"checkey/internal/digest"
	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/pkg/krtime"
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

// Mock task usecase exposing a fixed pending list
type mockTaskUseCase struct {
	pending []model.Task
	err     error
}

func (m *mockTaskUseCase) ConfirmCard(ctx context.Context, sc model.Scope, input task.ConfirmInput) (task.ConfirmOutput, error) {
	return task.ConfirmOutput{}, nil
}
func (m *mockTaskUseCase) ListPending(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	return m.pending, m.err
}
func (m *mockTaskUseCase) BackfillEstimates(ctx context.Context, sc model.Scope) (task.BackfillOutput, error) {
	return task.BackfillOutput{}, nil
}
func (m *mockTaskUseCase) Postpone(ctx context.Context, sc model.Scope, input task.PostponeInput) (model.Task, error) {
	return model.Task{}, nil
}
func (m *mockTaskUseCase) SetDone(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	return model.Task{}, nil
}
func (m *mockTaskUseCase) Remove(ctx context.Context, sc model.Scope, taskID string) error {
	return nil
}
func (m *mockTaskUseCase) SchedulesInRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error) {
	return nil, nil
}

var testScope = model.Scope{UserID: "telegram_42"}

func testLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// Monday 2026-03-02 10:30 KST.
func testNow(t *testing.T) time.Time {
	return time.Date(2026, 3, 2, 10, 30, 0, 0, testLoc(t))
}

func newTestUseCase(t *testing.T, tasks *mockTaskUseCase) *implUseCase {
	t.Helper()
	resolver, err := krtime.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	now := testNow(t)
	return New(&mockLogger{}, tasks, resolver).WithClock(func() time.Time { return now })
}

func pendingTask(id, title string, minutes int, due *time.Time, updated time.Time) model.Task {
	return model.Task{
		ID:                       id,
		UserID:                   testScope.UserID,
		Title:                    title,
		DueDate:                  due,
		EstimatedDurationMinutes: minutes,
		Status:                   model.TaskStatusPending,
		UpdatedAt:                updated,
	}
}

func TestBuildTodayEmpty(t *testing.T) {
	uc := newTestUseCase(t, &mockTaskUseCase{})

	d, err := uc.BuildToday(context.Background(), testScope)
	if err != nil {
		t.Fatalf("BuildToday returned error: %v", err)
	}
	if !d.Empty() {
		t.Error("expected empty digest")
	}
	if d.CoachLine != "오늘 처리할 할 일이 없어요. 잘 하고 있어요! 🙌" {
		t.Errorf("CoachLine = %q", d.CoachLine)
	}
	if d.Message != "" {
		t.Errorf("Message = %q, want empty", d.Message)
	}
}

func TestBuildTodayFiltersAndBuckets(t *testing.T) {
	loc := testLoc(t)
	now := testNow(t)
	today := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)
	yesterday := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	tomorrow := time.Date(2026, 3, 3, 9, 0, 0, 0, loc)

	tasks := &mockTaskUseCase{pending: []model.Task{
		pendingTask("1", "전화 돌리기", 10, &today, now),
		pendingTask("2", "메일 정리", 0, nil, now), // no estimate: assumed 5
		pendingTask("3", "보고서 작성", 25, &yesterday, now),
		pendingTask("4", "다음 분기 계획", 120, &tomorrow, now), // due later: excluded
	}}
	uc := newTestUseCase(t, tasks)

	d, err := uc.BuildToday(context.Background(), testScope)
	if err != nil {
		t.Fatalf("BuildToday returned error: %v", err)
	}

	wantBuckets := []struct {
		label string
		count int
	}{
		{digest.BucketTiny, 1},
		{digest.BucketShort, 1},
		{digest.BucketMedium, 1},
	}
	if len(d.Buckets) != len(wantBuckets) {
		t.Fatalf("got %d buckets, want %d: %+v", len(d.Buckets), len(wantBuckets), d.Buckets)
	}
	for i, w := range wantBuckets {
		if d.Buckets[i].Label != w.label || len(d.Buckets[i].Tasks) != w.count {
			t.Errorf("Buckets[%d] = %s/%d, want %s/%d",
				i, d.Buckets[i].Label, len(d.Buckets[i].Tasks), w.label, w.count)
		}
	}

	if d.CoachLine != "지금 처리하면 좋은 일: ≤5 1개, ≤10 1개, ≤30 1개. 짧은 일부터 가볍게 시작해요!" {
		t.Errorf("CoachLine = %q", d.CoachLine)
	}
	if !strings.Contains(d.Message, "• ≤10") || !strings.Contains(d.Message, "   - 전화 돌리기 · 10분 (마감 3/2 18:00)") {
		t.Errorf("Message missing expected lines:\n%s", d.Message)
	}
	if !strings.Contains(d.Message, "   - 메일 정리 · 5분") {
		t.Errorf("Message should assume 5 minutes for missing estimate:\n%s", d.Message)
	}
	if strings.Contains(d.Message, "다음 분기 계획") {
		t.Errorf("Message should not include tasks due after today:\n%s", d.Message)
	}
}

func TestBuildTodayOrderingWithinBucket(t *testing.T) {
	loc := testLoc(t)
	now := testNow(t)
	early := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	late := time.Date(2026, 3, 2, 20, 0, 0, 0, loc)

	tasks := &mockTaskUseCase{pending: []model.Task{
		pendingTask("1", "마감 없는 일", 5, nil, now.Add(-time.Hour)),
		pendingTask("2", "저녁 마감", 5, &late, now),
		pendingTask("3", "아침 마감", 5, &early, now),
		pendingTask("4", "마감 없는 최근 일", 5, nil, now),
	}}
	uc := newTestUseCase(t, tasks)

	d, err := uc.BuildToday(context.Background(), testScope)
	if err != nil {
		t.Fatalf("BuildToday returned error: %v", err)
	}
	if len(d.Buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(d.Buckets))
	}

	wantOrder := []string{"아침 마감", "저녁 마감", "마감 없는 최근 일", "마감 없는 일"}
	got := d.Buckets[0].Tasks
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d tasks, want %d", len(got), len(wantOrder))
	}
	for i, w := range wantOrder {
		if got[i].Title != w {
			t.Errorf("Tasks[%d].Title = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestBuildTodayCapsRenderedTasks(t *testing.T) {
	now := testNow(t)
	var pending []model.Task
	titles := []string{"일1", "일2", "일3", "일4", "일5", "일6", "일7"}
	for i, title := range titles {
		pending = append(pending, pendingTask(title, title, 5, nil, now.Add(-time.Duration(i)*time.Minute)))
	}
	uc := newTestUseCase(t, &mockTaskUseCase{pending: pending})

	d, err := uc.BuildToday(context.Background(), testScope)
	if err != nil {
		t.Fatalf("BuildToday returned error: %v", err)
	}
	if len(d.Buckets[0].Tasks) != 7 {
		t.Errorf("bucket should keep all tasks, got %d", len(d.Buckets[0].Tasks))
	}
	if got := strings.Count(d.Message, "   - "); got != 5 {
		t.Errorf("rendered %d task lines, want capped 5:\n%s", got, d.Message)
	}
	// The coach line still counts everything.
	if !strings.Contains(d.CoachLine, "≤5 7개") {
		t.Errorf("CoachLine = %q", d.CoachLine)
	}
}

func TestBuildTodayPropagatesListError(t *testing.T) {
	uc := newTestUseCase(t, &mockTaskUseCase{err: errors.New("db down")})

	if _, err := uc.BuildToday(context.Background(), testScope); err == nil {
		t.Fatal("expected error when pending tasks cannot be loaded")
	}
}
