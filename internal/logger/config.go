package logger

import (
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/rs/zerolog"
)

// LoggerConfig is config.LogConfig resolved into writer settings.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	Console    bool
	FilePath   string // rotated file; empty disables it
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether a rotated log file is written.
func (c LoggerConfig) FileEnabled() bool {
	return c.FilePath != ""
}

// LogFormat selects how entries are encoded.
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatJSON
	FormatText
)

// DefaultLoggerConfig resolves config.NewDefaultLogConfig.
func DefaultLoggerConfig() LoggerConfig {
	return ConvertConfig(config.NewDefaultLogConfig())
}
