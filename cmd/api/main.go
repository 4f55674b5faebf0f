package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	"personal-assistant/internal/assistant/intent"
	"personal-assistant/internal/assistant/usecase"
	convPostgre "personal-assistant/internal/conversation/repository/postgre"
	"personal-assistant/internal/httpserver"
	knowledgeHTTP "personal-assistant/internal/knowledge/delivery/http"
	knowrepo "personal-assistant/internal/knowledge/repository"
	knowQdrant "personal-assistant/internal/knowledge/repository/qdrant"
	knowUsecase "personal-assistant/internal/knowledge/usecase"
	"personal-assistant/internal/middleware"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/mailer"
	"personal-assistant/pkg/openai"
	"personal-assistant/pkg/qdrant"
)

// @title       Personal Assistant API
// @description LLM-driven personal assistant: intent resolution, knowledge base queries, email and meeting actions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 4. Conversation history store
	if cfg.Postgres.DSN == "" {
		logger.Error(ctx, "POSTGRES_DSN is required")
		return
	}
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping database: ", err)
		return
	}
	historyRepo := convPostgre.New(db, logger)

	// 5. Knowledge base (optional)
	var vectorRepo knowrepo.VectorRepository
	if cfg.Qdrant.URL != "" && cfg.Embeddings.APIKey != "" {
		embedder, embErr := openai.New(openai.Config{
			APIKey:         cfg.Embeddings.APIKey,
			EmbeddingModel: cfg.Embeddings.Model,
		})
		if embErr != nil {
			logger.Warnf(ctx, "Embeddings client not available (optional): %v", embErr)
		} else {
			qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
			vectorRepo = knowQdrant.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, logger)
			logger.Info(ctx, "Knowledge base initialized")
		}
	} else {
		logger.Warn(ctx, "Knowledge base skipped: QDRANT_URL or embeddings API key is missing")
	}

	// 6. Email integration (optional)
	var emailSender mailer.IMailer
	if cfg.SMTP.Host != "" {
		emailSender, err = mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			logger.Warnf(ctx, "Mailer not available (optional): %v", err)
			emailSender = nil
		} else {
			logger.Info(ctx, "Mailer initialized")
		}
	} else {
		logger.Warn(ctx, "Email integration skipped: SMTP host is missing")
	}

	// 7. Google Calendar (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Calendar integration skipped: credentials path is missing")
	}

	// 8. Assistant domain
	resolver := intent.New(llmManager, logger)
	assistantUC := usecase.New(logger, usecase.Options{
		LLM:          llmManager,
		Resolver:     resolver,
		HistoryRepo:  historyRepo,
		VectorRepo:   vectorRepo,
		Mailer:       emailSender,
		Calendar:     calendarClient,
		HistoryLimit: cfg.Conversation.HistoryLimit,
	})
	assistantHandler := assistantHTTP.New(logger, assistantUC)

	var knowledgeHandler knowledgeHTTP.Handler
	if vectorRepo != nil {
		knowledgeUC := knowUsecase.New(logger, vectorRepo)
		knowledgeHandler = knowledgeHTTP.New(logger, knowledgeUC)
	}

	// 9. HTTP Server
	mw := middleware.New(logger, cfg.Auth)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
		KnowledgeHandler: knowledgeHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
