package scheduler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CycleRunner executes one check cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*models.RunSummary, error)
}

// Scheduler runs check cycles in automated mode: once at start, then on a
// cron schedule. A tick that fires while a cycle is still running is skipped.
type Scheduler struct {
	runner   CycleRunner
	schedule cron.Schedule
	location *time.Location
	logger   zerolog.Logger

	mu        sync.Mutex
	isRunning bool
}

// NewScheduler parses the configured cron expression.
func NewScheduler(runner CycleRunner, cfg config.SchedulerConfig, logger zerolog.Logger) (*Scheduler, error) {
	expr := strings.TrimSpace(cfg.Cron)
	if expr == "" {
		return nil, errorwrapper.NewValidationError("cron", cfg.Cron, "cron expression is required in automated mode")
	}
	schedule, err := config.CronParser.Parse(expr)
	if err != nil {
		return nil, errorwrapper.WrapErrorf(err, "invalid cron expression %q", expr)
	}

	location := time.Local
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errorwrapper.WrapErrorf(err, "invalid scheduler timezone %q", cfg.Timezone)
		}
		location = loc
	}

	return &Scheduler{
		runner:   runner,
		schedule: schedule,
		location: location,
		logger:   logger.With().Str("module", "Scheduler").Str("cron", expr).Logger(),
	}, nil
}

// Start blocks until ctx is cancelled. It returns once the in-flight cycle,
// if any, has finished.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return errorwrapper.NewError("scheduler is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	s.logger.Info().Msg("Scheduler started, running initial cycle")
	s.runOnce(ctx)

	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(newCronLogger(s.logger)),
		cron.WithChain(cron.Recover(newCronLogger(s.logger)), cron.SkipIfStillRunning(newCronLogger(s.logger))),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.runOnce(ctx) }))
	c.Start()

	if next := s.schedule.Next(time.Now().In(s.location)); !next.IsZero() {
		s.logger.Info().Time("next_run", next).Msg("Next cycle scheduled")
	}

	<-ctx.Done()
	s.logger.Info().Msg("Stopping scheduler")
	<-c.Stop().Done()
	s.logger.Info().Msg("Scheduler stopped")
	return nil
}

// IsRunning reports whether Start is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	summary, err := s.runner.RunCycle(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Check cycle failed, waiting for next run")
		return
	}
	if summary != nil {
		s.logger.Debug().Str("run_id", summary.RunID).Str("status", string(summary.Status)).Msg("Check cycle completed")
	}
}
