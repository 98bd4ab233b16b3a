package usecase

import (
	"context"
	"time"

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

// Mock completer for testing
type mockCompleter struct {
	content string
	err     error
	calls   int
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	m.calls++
	return m.content, m.err
}

// testNow is the fixed reference point used by extraction tests:
// Monday 2026-03-02 10:30 KST.
func testNow() time.Time {
	loc, _ := time.LoadLocation("Asia/Seoul")
	return time.Date(2026, 3, 2, 10, 30, 0, 0, loc)
}

func newTestUseCase(llm *mockCompleter) *implUseCase {
	resolver, err := krtime.NewResolver("Asia/Seoul")
	if err != nil {
		panic(err)
	}
	return New(&mockLogger{}, llm, resolver).WithClock(testNow)
}
