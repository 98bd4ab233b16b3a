package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"checkey/internal/extract"
	"checkey/internal/model"
)

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

type mockExtractUseCase struct {
	entity   extract.ParsedEntity
	err      error
	lastText string
}

func (m *mockExtractUseCase) Extract(ctx context.Context, sc model.Scope, input extract.ExtractInput) (extract.ParsedEntity, error) {
	m.lastText = input.RawText
	return m.entity, m.err
}

func (m *mockExtractUseCase) ProjectToCard(entity extract.ParsedEntity) extract.ConfirmationCard {
	return extract.ConfirmationCard{
		Kind:  entity.Kind,
		Title: entity.Title,
		Tasks: entity.Tasks,
	}
}

func (m *mockExtractUseCase) EstimateDuration(title string) int { return 5 }

func newTestRouter(uc extract.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), New(&mockLogger{}, uc))
	return router
}

func postExtract(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExtract(t *testing.T) {
	uc := &mockExtractUseCase{entity: extract.ParsedEntity{
		Kind:  extract.KindTask,
		Title: "우유 사기",
		Tasks: []extract.TaskFragment{{Title: "우유 사기"}},
	}}
	router := newTestRouter(uc)

	w := postExtract(router, `{"text": "우유 사기", "user_id": "user-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.lastText != "우유 사기" {
		t.Errorf("usecase received %q", uc.lastText)
	}

	var resp struct {
		Data extractResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Entity.Kind != "task" || resp.Data.Card.Kind != "task" {
		t.Errorf("kinds = %q / %q, want task", resp.Data.Entity.Kind, resp.Data.Card.Kind)
	}
	if len(resp.Data.Card.Tasks) != 1 || resp.Data.Card.Tasks[0].Title != "우유 사기" {
		t.Errorf("card tasks = %+v", resp.Data.Card.Tasks)
	}
}

func TestExtractValidation(t *testing.T) {
	router := newTestRouter(&mockExtractUseCase{})

	for name, body := range map[string]string{
		"missing text": `{"user_id": "user-1"}`,
		"empty text":   `{"text": ""}`,
		"bad json":     `{`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postExtract(router, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestExtractEmptyUtteranceError(t *testing.T) {
	uc := &mockExtractUseCase{err: extract.ErrEmptyUtterance}
	router := newTestRouter(uc)

	w := postExtract(router, `{"text": "   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
