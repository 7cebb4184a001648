package config

const (
	// Site Defaults
	DefaultLoginPath = "/wp-login.php?action=postpass"

	// Extractor Defaults
	DefaultFileExtension  = ".pdf"
	DefaultLabelAttribute = "aria-label"

	// HTTP Defaults
	DefaultUserAgent          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultHTTPTimeoutSecs    = 30
	DefaultMaxPageSizeBytes   = 10 * 1024 * 1024
	DefaultMaxConcurrentProbe = 1

	// Storage Defaults
	DefaultSnapshotFile = "data/snapshot.json"

	// Notification Defaults
	DefaultNotificationBatchSize = 15
	DefaultChangeTitle           = "New PDF found"
	DefaultLogTitle              = "PDF fetch result"
	DefaultEmbedColor            = 0x57F287
	DefaultFooterText            = "pdfwatch"
	DefaultDisplayTimezone       = "Europe/Berlin"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Scheduler Defaults
	DefaultSchedulerCron = "@every 1h"

	// Modes
	ModeOnetime   = "onetime"
	ModeAutomated = "automated"
)

// Environment variable names recognised as overrides.
const (
	EnvConfigPath        = "PDFWATCH_CONFIG_PATH"
	EnvBaseURL           = "BASE_URL"
	EnvPageURL           = "PAGE_URL"
	EnvPagePassword      = "PAGE_PASSWORD"
	EnvSnapshotFile      = "SNAPSHOT_FILE"
	EnvChangeWebhookURL  = "DISCORD_WEBHOOK_URL"
	EnvLogWebhookURL     = "DISCORD_LOG_WEBHOOK_URL"
	EnvLogLevel          = "LOG_LEVEL"
	EnvCron              = "PDFWATCH_CRON"
	EnvHTTPTimeoutSecs   = "HTTP_TIMEOUT_SECONDS"
	EnvDisplayTimezone   = "DISPLAY_TIMEZONE"
	EnvMaxConcurrentProb = "MAX_CONCURRENT_PROBES"
)
