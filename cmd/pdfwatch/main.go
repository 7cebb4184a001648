package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/logger"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/aleister1102/pdfwatch/internal/monitor"
	"github.com/aleister1102/pdfwatch/internal/scheduler"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "pdfwatch",
		Usage:   "watch a password protected page for new or updated PDF files",
		Version: version,
		Flags:   appFlags(),
		Action:  run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "[FATAL]", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if err := config.LoadEnvFile(c.String(flagEnvFile)); err != nil {
		return err
	}

	cfg, err := config.LoadGlobalConfig(c.String(flagConfig), os.LookupEnv)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	applyFlagOverrides(c, cfg)

	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	zLogger, err := logger.New(cfg.LogConfig, c.String(flagLogLevel))
	if err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}
	zLogger.Debug().Str("mode", cfg.Mode).Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := monitor.NewServiceFromConfig(cfg, afero.NewOsFs(), zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize monitor")
		return err
	}

	if cfg.Mode == config.ModeAutomated {
		return runAutomated(ctx, svc, cfg, zLogger)
	}
	return runOnce(ctx, svc, zLogger)
}

func runOnce(ctx context.Context, svc *monitor.Service, zLogger zerolog.Logger) error {
	summary, err := svc.RunCycle(ctx)
	if err != nil {
		return err
	}
	if summary.Status == models.RunStatusChanged {
		fmt.Println("Change detected, snapshot updated")
	} else {
		fmt.Println("No change.")
	}
	zLogger.Debug().Str("run_id", summary.RunID).Msg("Onetime run complete")
	return nil
}

func runAutomated(ctx context.Context, svc *monitor.Service, cfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	sched, err := scheduler.NewScheduler(svc, cfg.SchedulerConfig, zLogger)
	if err != nil {
		return err
	}
	return sched.Start(ctx)
}
