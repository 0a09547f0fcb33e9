package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/talbenari/coachflow/internal/assembler"
	"github.com/talbenari/coachflow/internal/cli"
	"github.com/talbenari/coachflow/internal/config"
	"github.com/talbenari/coachflow/internal/db"
	"github.com/talbenari/coachflow/internal/extract"
	"github.com/talbenari/coachflow/internal/llm"
	"github.com/talbenari/coachflow/internal/repository"
	"github.com/talbenari/coachflow/internal/service"
	"github.com/talbenari/coachflow/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log.Level)

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	tokenRepo := repository.NewSQLiteTokenRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	messageRepo := repository.NewSQLiteMessageRepo(database)
	fileRepo := repository.NewSQLiteFileRepo(database)
	promptRepo := repository.NewSQLitePromptConfigRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the LLM gateway and the context assembler
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	gateway := llm.NewOpenAIGateway(llmCfg, observer)
	asm := assembler.New(extract.NewPDFExtractor())

	store, err := storage.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return err
	}

	app := &cli.App{
		Users:    service.NewUserService(userRepo, tokenRepo, logger),
		Projects: service.NewProjectService(projectRepo, uow, logger),
		Sessions: service.NewSessionService(sessionRepo, projectRepo, messageRepo, fileRepo, promptRepo, gateway, asm, logger),
		Chat:     service.NewChatService(sessionRepo, messageRepo, fileRepo, promptRepo, gateway, asm, logger),
		Files:    service.NewFileService(fileRepo, store, logger),
		Prompts:  service.NewPromptService(promptRepo, logger),
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger builds the process logger. Logs go to stderr so command output
// stays clean; a non-terminal stderr keeps the default text handler too,
// just without any terminal assumptions.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
