package main

import (
	"strings"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/urfave/cli/v2"
)

const (
	flagConfig   = "config"
	flagEnvFile  = "env-file"
	flagMode     = "mode"
	flagCron     = "cron"
	flagLogLevel = "log-level"
)

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "path to a YAML or JSON config file (default: $" + config.EnvConfigPath + ", then config.yaml/config.json)",
		},
		&cli.StringFlag{
			Name:  flagEnvFile,
			Usage: "dotenv file loaded before reading the environment (default: .env when present)",
		},
		&cli.StringFlag{
			Name:    flagMode,
			Aliases: []string{"m"},
			Usage:   "run mode: onetime or automated",
		},
		&cli.StringFlag{
			Name:  flagCron,
			Usage: "schedule for automated mode, e.g. \"*/30 6-18 * * 1-5\" or \"@every 1h\"",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level: debug, info, warn, error",
		},
	}
}

// applyFlagOverrides copies explicitly set flags onto cfg; flags win over
// the config file and the environment. --log-level is applied when the
// logger is built.
func applyFlagOverrides(c *cli.Context, cfg *config.GlobalConfig) {
	if c.IsSet(flagMode) {
		cfg.Mode = strings.ToLower(strings.TrimSpace(c.String(flagMode)))
	}
	if c.IsSet(flagCron) {
		cfg.SchedulerConfig.Cron = c.String(flagCron)
	}
}
