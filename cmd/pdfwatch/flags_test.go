package main

import (
	"testing"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parseFlags(t *testing.T, args ...string) *config.GlobalConfig {
	t.Helper()
	cfg := config.NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "warn"
	app := &cli.App{
		Name:  "pdfwatch",
		Flags: appFlags(),
		Action: func(c *cli.Context) error {
			applyFlagOverrides(c, cfg)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"pdfwatch"}, args...)))
	return cfg
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := parseFlags(t, "-m", "Automated", "--cron", "*/15 * * * *")

	assert.Equal(t, config.ModeAutomated, cfg.Mode)
	assert.Equal(t, "*/15 * * * *", cfg.SchedulerConfig.Cron)
}

func TestApplyFlagOverrides_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := parseFlags(t)

	assert.Equal(t, config.ModeOnetime, cfg.Mode)
	assert.Equal(t, config.DefaultSchedulerCron, cfg.SchedulerConfig.Cron)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
}
