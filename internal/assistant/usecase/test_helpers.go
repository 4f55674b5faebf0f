package usecase

import (
	"context"
	"sync"

	"personal-assistant/internal/assistant/intent"
	convrepo "personal-assistant/internal/conversation/repository"
	knowrepo "personal-assistant/internal/knowledge/repository"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
)

// Hand-written mocks shared by the usecase tests.

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

type mockLLM struct {
	text string
	err  error

	mu      sync.Mutex
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.lastReq = req
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-model"}, nil
}

type mockResolver struct {
	resolution intent.Resolution
	err        error

	mu          sync.Mutex
	lastHistory []model.Turn
}

func (m *mockResolver) Resolve(ctx context.Context, message string, history []model.Turn) (intent.Resolution, error) {
	m.mu.Lock()
	m.lastHistory = history
	m.mu.Unlock()
	if m.err != nil {
		return intent.Resolution{}, m.err
	}
	return m.resolution, nil
}

type mockHistoryRepo struct {
	turns     []model.Turn
	fetchErr  error
	insertErr error

	mu      sync.Mutex
	entries []convrepo.CreateEntryOptions
}

func (m *mockHistoryRepo) CreateEntry(ctx context.Context, opt convrepo.CreateEntryOptions) (model.ConversationEntry, error) {
	if m.insertErr != nil {
		return model.ConversationEntry{}, m.insertErr
	}
	m.mu.Lock()
	m.entries = append(m.entries, opt)
	m.mu.Unlock()
	return model.ConversationEntry{
		ID:       "test-id",
		UserID:   opt.UserID,
		Message:  opt.Message,
		Response: opt.Response,
	}, nil
}

func (m *mockHistoryRepo) GetRecentTurns(ctx context.Context, opt convrepo.GetRecentTurnsOptions) ([]model.Turn, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.turns, nil
}

func (m *mockHistoryRepo) storedEntries() []convrepo.CreateEntryOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]convrepo.CreateEntryOptions, len(m.entries))
	copy(out, m.entries)
	return out
}

type mockVectorRepo struct {
	results   []knowrepo.SearchResult
	searchErr error
}

func (m *mockVectorRepo) SearchDocuments(ctx context.Context, opt knowrepo.SearchDocumentsOptions) ([]knowrepo.SearchResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *mockVectorRepo) IndexDocument(ctx context.Context, opt knowrepo.IndexDocumentOptions) error {
	return nil
}

type mockMailer struct {
	err error

	mu       sync.Mutex
	sentTo   string
	sentSubj string
	sentBody string
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.sentTo, m.sentSubj, m.sentBody = to, subject, body
	m.mu.Unlock()
	return nil
}

type mockCalendar struct {
	err error

	mu      sync.Mutex
	lastReq *gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	m.lastReq = &req
	m.mu.Unlock()
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
