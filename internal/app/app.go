package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"rag-assistant/client/internal/api"
	"rag-assistant/client/internal/config"
	"rag-assistant/client/internal/database"
	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/repository"
	"rag-assistant/client/internal/service"
	"rag-assistant/client/internal/session"
)

// App holds the wired client.
type App struct {
	Config     *config.Config
	Dispatcher *service.Dispatcher
	Server     *http.Server
	// DB and Journal are nil when the journal is disabled.
	DB      *sql.DB
	Journal *service.Journal
}

// NewApp wires the gateway, the session store, the dispatcher and the
// inspector server from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	backend, err := gateway.NewClient(gateway.Options{
		BaseURL: cfg.BackendURL,
		Token:   cfg.APIToken,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	a := &App{Config: cfg}

	var (
		observers      []session.Observer
		journalHandler *api.JournalHandler
	)
	if cfg.JournalPath != "" {
		db, err := database.InitDB(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize journal database: %w", err)
		}
		repo := repository.NewSQLiteRepository(db)
		a.DB = db
		a.Journal = service.NewJournal(repo)
		observers = append(observers, a.Journal)
		journalHandler = api.NewJournalHandler(repo)
		slog.Info("Lifecycle journal enabled", "path", cfg.JournalPath)
	}

	store := session.NewStore(observers...)
	a.Dispatcher = service.NewDispatcher(store, backend, service.Options{
		UserID:            cfg.UserID,
		Fencing:           cfg.ConversationFencing,
		AutoSelectUploads: cfg.AutoSelectUploads,
	})
	dialog := service.NewFeedbackDialog(a.Dispatcher)

	router := api.NewRouter(api.NewSessionHandler(a.Dispatcher), api.NewFeedbackHandler(dialog), journalHandler)

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for the state stream and long answers.
		IdleTimeout:       120 * time.Second,
	}

	return a, nil
}

// Close flushes the journal and closes its database.
func (a *App) Close() error {
	if a.Journal != nil {
		a.Journal.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize client", "error", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("Failed to close journal database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.loadConversations(ctx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting inspector server", "port", cfg.AppPort, "backend_url", cfg.BackendURL)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// loadConversations fills the conversation list once at start. A failure
// lands in the session error slot; the client keeps running.
func (a *App) loadConversations(ctx context.Context) {
	if err := a.Dispatcher.ListConversations(ctx); err != nil {
		slog.Warn("Initial conversation list failed", "backend_url", a.Config.BackendURL, "error", err)
		return
	}
	slog.Info("Loaded conversations", "count", len(a.Dispatcher.Snapshot().Conversations))
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
