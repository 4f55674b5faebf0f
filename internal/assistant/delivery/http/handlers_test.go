package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-assistant/config"
	"personal-assistant/internal/assistant"
	"personal-assistant/internal/middleware"
	"personal-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	outcome assistant.Outcome
	err     error

	lastScope model.Scope
	lastInput assistant.ProcessInput
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, sc model.Scope, ip assistant.ProcessInput) (assistant.Outcome, error) {
	m.lastScope = sc
	m.lastInput = ip
	if m.err != nil {
		return assistant.Outcome{}, m.err
	}
	return m.outcome, nil
}

func setupRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := New(&mockLogger{}, uc)
	v1 := r.Group("/api/v1")
	RegisterRoutes(v1, h, testMiddleware())
	return r
}

func testMiddleware() middleware.Middleware {
	// No API key and a generous budget so tests exercise the handler,
	// not the limiter.
	return middleware.New(&mockLogger{}, config.AuthConfig{RateLimitPerMin: 600})
}

func doRequest(t *testing.T, r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/process", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authHeaders() map[string]string {
	return map[string]string{"X-User-ID": "user-1"}
}

func TestProcessMessageHandler(t *testing.T) {
	uc := &mockUseCase{outcome: assistant.Outcome{Response: "Hello!"}}
	r := setupRouter(uc)

	w := doRequest(t, r, `{"message": "hi"}`, authHeaders())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Data.Response != "Hello!" {
		t.Errorf("response = %q", resp.Data.Response)
	}

	if uc.lastScope.UserID != "user-1" {
		t.Errorf("scope UserID = %q", uc.lastScope.UserID)
	}
	if uc.lastInput.Message != "hi" {
		t.Errorf("input message = %q", uc.lastInput.Message)
	}
}

func TestProcessMessageHandlerEmptyMessage(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		w := doRequest(t, r, body, authHeaders())
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestProcessMessageHandlerMalformedBody(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := doRequest(t, r, `{"message": `, authHeaders())
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestProcessMessageHandlerMissingUser(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := doRequest(t, r, `{"message": "hi"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestProcessMessageHandlerErrorOutcome(t *testing.T) {
	uc := &mockUseCase{outcome: assistant.Outcome{
		Error:   "Failed to send email.",
		Details: "smtp down",
	}}
	r := setupRouter(uc)

	// Action failures are reported in the payload, not the status.
	w := doRequest(t, r, `{"message": "email john"}`, authHeaders())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to send email.") {
		t.Errorf("body = %s", w.Body.String())
	}
}
