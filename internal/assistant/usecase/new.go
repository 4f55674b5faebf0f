package usecase

import (
	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/intent"
	convrepo "personal-assistant/internal/conversation/repository"
	knowrepo "personal-assistant/internal/knowledge/repository"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/mailer"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l        log.Logger
	llm      intent.LLM
	resolver intent.Resolver

	historyRepo convrepo.Repository
	vectorRepo  knowrepo.VectorRepository // nil disables knowledge queries
	mailer      mailer.IMailer            // nil disables email sending
	calendar    gcalendar.ICalendar       // nil disables calendar events

	historyLimit int
}

var _ assistant.UseCase = (*implUseCase)(nil)

// Options holds the dependencies for the assistant UseCase. Optional
// integrations may be nil; the matching actions then report a
// configuration error instead of executing.
type Options struct {
	LLM          intent.LLM
	Resolver     intent.Resolver
	HistoryRepo  convrepo.Repository
	VectorRepo   knowrepo.VectorRepository
	Mailer       mailer.IMailer
	Calendar     gcalendar.ICalendar
	HistoryLimit int
}

// New creates a new assistant UseCase implementation.
func New(l log.Logger, opt Options) *implUseCase {
	if opt.LLM == nil {
		panic("assistant/usecase: LLM manager is required")
	}
	if opt.Resolver == nil {
		panic("assistant/usecase: resolver is required")
	}
	if opt.HistoryRepo == nil {
		panic("assistant/usecase: history repository is required")
	}
	if opt.HistoryLimit <= 0 {
		opt.HistoryLimit = 5
	}
	return &implUseCase{
		l:            l,
		llm:          opt.LLM,
		resolver:     opt.Resolver,
		historyRepo:  opt.HistoryRepo,
		vectorRepo:   opt.VectorRepo,
		mailer:       opt.Mailer,
		calendar:     opt.Calendar,
		historyLimit: opt.HistoryLimit,
	}
}
