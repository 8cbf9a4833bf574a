package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/scheduleapp/internal/app"
	"github.com/dtroode/scheduleapp/internal/cli/command"
	"github.com/dtroode/scheduleapp/internal/config"
	"github.com/dtroode/scheduleapp/internal/logger"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	factory := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.NewConfig()
		if err != nil {
			return nil, err
		}
		logger := logger.NewWithWriter(os.Stderr, cfg.LogLevel)
		logger.Debug("Starting", "version", buildVersion, "date", buildDate, "commit", buildCommit)

		return app.New(ctx, cfg, logger)
	}

	cliApp := command.New(factory, appVersion())
	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		command.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func appVersion() string {
	return fmt.Sprintf("%s (date %s, commit %s)", buildVersion, buildDate, buildCommit)
}
