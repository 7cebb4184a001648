package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/joho/godotenv"
)

// EnvLookup mirrors os.LookupEnv so tests can inject an environment.
type EnvLookup func(key string) (string, bool)

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment without overriding variables that are already set. An empty
// path means ".env" in the working directory, which may be absent.
func LoadEnvFile(path string) error {
	if path == "" {
		if !fileExists(".env") {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return errorwrapper.WrapErrorf(err, "failed to load env file '%s'", path)
	}
	return nil
}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the explicit path (must exist)
// 2. PDFWATCH_CONFIG_PATH environment variable
// 3. config.yaml, config.yml, then config.json in the current working directory
// An empty result means no config file; defaults and environment are used.
func GetConfigPath(configFilePathFlag string, env EnvLookup) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
		return ""
	}

	if env != nil {
		if envPath, ok := env(EnvConfigPath); ok && envPath != "" && fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		path := filepath.Join(cwd, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// ApplyEnvOverrides copies recognised environment variables onto cfg.
func ApplyEnvOverrides(cfg *GlobalConfig, env EnvLookup) error {
	setString := func(key string, dst *string) {
		if v, ok := env(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := env(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errorwrapper.NewValidationError(key, v, "must be an integer")
		}
		*dst = n
		return nil
	}

	setString(EnvBaseURL, &cfg.SiteConfig.BaseURL)
	setString(EnvPageURL, &cfg.SiteConfig.PageURL)
	setString(EnvPagePassword, &cfg.SiteConfig.PagePassword)
	setString(EnvSnapshotFile, &cfg.StorageConfig.SnapshotFile)
	setString(EnvChangeWebhookURL, &cfg.NotificationConfig.ChangeWebhookURL)
	setString(EnvLogWebhookURL, &cfg.NotificationConfig.LogWebhookURL)
	setString(EnvDisplayTimezone, &cfg.NotificationConfig.DisplayTimezone)
	setString(EnvLogLevel, &cfg.LogConfig.LogLevel)
	setString(EnvCron, &cfg.SchedulerConfig.Cron)

	if err := setInt(EnvHTTPTimeoutSecs, &cfg.HTTPConfig.TimeoutSeconds); err != nil {
		return err
	}
	return setInt(EnvMaxConcurrentProb, &cfg.HTTPConfig.MaxConcurrentProbes)
}

// fileExists reports whether filename exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
