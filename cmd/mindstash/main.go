package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindstash/mindstash/adapter/cli"
	cliCalendar "github.com/mindstash/mindstash/adapter/cli/calendar"
	cliInbox "github.com/mindstash/mindstash/adapter/cli/inbox"
	cliNotes "github.com/mindstash/mindstash/adapter/cli/notes"
	"github.com/mindstash/mindstash/internal/app"
	"github.com/mindstash/mindstash/pkg/config"
	"github.com/mindstash/mindstash/pkg/observability"
)

func main() {
	// Setup logger
	logger := observability.NewLogger(observability.DefaultLogConfig())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration. A missing API key is fatal: the oracle client
	// cannot be constructed without it.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	if cfg.IsDevelopment() {
		logCfg.Level = observability.LogLevelDebug
	}
	logger = observability.NewLogger(logCfg)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		SubmitThoughtHandler:   container.SubmitThoughtHandler,
		RouteToCalendarHandler: container.RouteToCalendarHandler,
		RouteToNotesHandler:    container.RouteToNotesHandler,
		Inbox:                  container.Inbox,
		Calendar:               container.Calendar,
		Notes:                  container.Notes,
	})

	// Register commands
	cli.AddCommand(cliInbox.Cmd)
	cli.AddCommand(cliCalendar.Cmd)
	cli.AddCommand(cliNotes.Cmd)

	// Execute CLI
	cli.Execute()
}
