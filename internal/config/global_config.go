package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	Mode               string             `json:"mode,omitempty" yaml:"mode,omitempty" validate:"required,mode"`
	SiteConfig         SiteConfig         `json:"site_config,omitempty" yaml:"site_config,omitempty"`
	ExtractorConfig    ExtractorConfig    `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	HTTPConfig         HTTPConfig         `json:"http_config,omitempty" yaml:"http_config,omitempty"`
	StorageConfig      StorageConfig      `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	SchedulerConfig    SchedulerConfig    `json:"scheduler_config,omitempty" yaml:"scheduler_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Mode:               ModeOnetime,
		SiteConfig:         NewDefaultSiteConfig(),
		ExtractorConfig:    NewDefaultExtractorConfig(),
		HTTPConfig:         NewDefaultHTTPConfig(),
		StorageConfig:      NewDefaultStorageConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		SchedulerConfig:    NewDefaultSchedulerConfig(),
		LogConfig:          NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig builds the configuration from defaults, an optional config
// file and the process environment, in that order of precedence (later wins).
// The result is not validated; call ValidateConfig before use.
func LoadGlobalConfig(providedPath string, env EnvLookup) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if env == nil {
		env = os.LookupEnv
	}

	filePath := GetConfigPath(providedPath, env)
	if providedPath != "" && filePath != providedPath {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to load config file content")
		}
		if err := parseConfigContent(data, filePath, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse config content")
		}
	}

	if err := ApplyEnvOverrides(cfg, env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
