package http_test

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/task"
	formHTTP "tasktracker-webui/internal/task/delivery/http"
	"tasktracker-webui/internal/task/repository"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	output task.CreateOutput
	err    error
	calls  int
	got    task.CreateInput
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	m.calls++
	m.got = input
	return m.output, m.err
}

// newTestRouter wires the form handler into a bare engine with an inline
// template, the same shape the HTTP server builds at startup.
func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(
		template.New("input_task.html").Parse("<html><body>task form</body></html>")))

	formHTTP.RegisterRoutes(engine.Group("/"), formHTTP.New(&mockLogger{}, uc))
	return engine
}

func postForm(t *testing.T, engine *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"task_start":  {"2024-3-15"},
		"task_time":   {"9:30"},
		"task_name":   {"Water plants"},
		"repeat_info": {"weekly"},
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestShowForm(t *testing.T) {
	engine := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "task form") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("unexpected content type: %s", ct)
	}
}

func TestSubmit(t *testing.T) {
	t.Run("Valid submission renders the form again", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newTestRouter(uc)

		w := postForm(t, engine, validForm())

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		if uc.calls != 1 {
			t.Fatalf("expected 1 use case call, got %d", uc.calls)
		}

		want := task.Fields{
			"task_start":  "2024-3-15",
			"task_time":   "9:30",
			"task_name":   "Water plants",
			"repeat_info": "weekly",
		}
		for key, value := range want {
			if uc.got.Fields[key] != value {
				t.Errorf("field %s: got %q, want %q", key, uc.got.Fields[key], value)
			}
		}
		if !strings.Contains(w.Body.String(), "task form") {
			t.Errorf("expected the form page back, got: %s", w.Body.String())
		}
	})

	t.Run("Absent fields stay absent, empty fields stay empty", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newTestRouter(uc)

		form := validForm()
		form.Del("task_start")
		form.Set("task_name", "")

		postForm(t, engine, form)

		if _, ok := uc.got.Fields["task_start"]; ok {
			t.Errorf("task_start should not be present: %+v", uc.got.Fields)
		}
		if value, ok := uc.got.Fields["task_name"]; !ok || value != "" {
			t.Errorf("task_name should be present and empty: %+v", uc.got.Fields)
		}
	})

	t.Run("Validation failure answers 400 with the field error text", func(t *testing.T) {
		_, fieldErr := task.ParseStartDate(task.Fields{"task_start": "2024-3"})
		uc := &mockUseCase{err: fieldErr}
		engine := newTestRouter(uc)

		w := postForm(t, engine, validForm())

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != fieldErr.Error() {
			t.Errorf("body %q, want %q", w.Body.String(), fieldErr.Error())
		}
		if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
			t.Errorf("unexpected content type: %s", ct)
		}
	})

	t.Run("Unreachable tracker answers 502 with the fixed message", func(t *testing.T) {
		uc := &mockUseCase{
			err: fmt.Errorf("%w: dial tcp: connection refused", repository.ErrTrackerUnreachable),
		}
		engine := newTestRouter(uc)

		w := postForm(t, engine, validForm())

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if w.Body.String() != "Failed to connect to TaskTracker API." {
			t.Errorf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("Tracker rejection answers 502 with the status", func(t *testing.T) {
		uc := &mockUseCase{
			err: &repository.StatusError{Code: 503, Body: "maintenance"},
		}
		engine := newTestRouter(uc)

		w := postForm(t, engine, validForm())

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "503") {
			t.Errorf("body %q does not carry the tracker status", w.Body.String())
		}
	})

	t.Run("Unexpected errors answer 500", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("wires crossed")}
		engine := newTestRouter(uc)

		w := postForm(t, engine, validForm())

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
