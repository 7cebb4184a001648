package logger

import (
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/rs/zerolog"
)

// New creates a logger from application log settings. A non-empty
// levelOverride, such as the --log-level flag, replaces the configured level.
func New(cfg config.LogConfig, levelOverride string) (zerolog.Logger, error) {
	builder := NewLoggerBuilder().WithConfig(cfg)
	if levelOverride != "" {
		level, err := ParseLevel(levelOverride)
		if err != nil {
			return zerolog.Logger{}, err
		}
		builder.WithLevel(level)
	}
	return builder.Build()
}
