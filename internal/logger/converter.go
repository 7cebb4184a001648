package logger

import (
	"github.com/aleister1102/pdfwatch/internal/config"
)

// ConvertConfig converts application log settings to a logger config.
// An unknown level falls back to info, and non-positive rotation limits to
// the config package defaults.
func ConvertConfig(cfg config.LogConfig) LoggerConfig {
	// ParseLevel reports info alongside its error
	level, _ := ParseLevel(cfg.LogLevel)

	return LoggerConfig{
		Level:      level,
		Format:     ParseFormat(cfg.LogFormat),
		Console:    true,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  positiveOr(cfg.MaxLogSizeMB, config.DefaultMaxLogSizeMB),
		MaxBackups: positiveOr(cfg.MaxLogBackups, config.DefaultMaxLogBackups),
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
