package monitor

import (
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/datastore"
	"github.com/aleister1102/pdfwatch/internal/extractor"
	"github.com/aleister1102/pdfwatch/internal/fetcher"
	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/aleister1102/pdfwatch/internal/notifier"
	"github.com/aleister1102/pdfwatch/internal/prober"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// NewServiceFromConfig wires a Service from a validated configuration. The
// page session and the webhook sinks use separate HTTP clients so site
// cookies never reach Discord.
func NewServiceFromConfig(cfg *config.GlobalConfig, fs afero.Fs, logger zerolog.Logger) (*Service, error) {
	clientCfg := httpclient.FromAppConfig(cfg.HTTPConfig)

	session, err := httpclient.NewHTTPClientBuilder(logger).WithConfig(clientCfg).Build()
	if err != nil {
		return nil, err
	}

	source, err := fetcher.NewPageFetcher(session, cfg.SiteConfig, cfg.HTTPConfig, logger)
	if err != nil {
		return nil, err
	}

	webhookClient, err := httpclient.NewHTTPClientBuilder(logger).WithConfig(clientCfg).Build()
	if err != nil {
		return nil, err
	}

	nc := cfg.NotificationConfig
	deps := Dependencies{
		Source:     source,
		Extractor:  extractor.NewLinkExtractor(cfg.ExtractorConfig, logger),
		Prober:     prober.NewMetadataProber(session, cfg.HTTPConfig.MaxConcurrentProbes, logger),
		Store:      datastore.NewSnapshotStore(fs, cfg.StorageConfig.SnapshotFile, logger),
		ChangeSink: notifier.NewDiscordSink(webhookClient, nc.ChangeWebhookURL, notifier.ChangeProfile(nc), nc, logger),
		LogSink:    notifier.NewDiscordSink(webhookClient, nc.LogWebhookURL, notifier.LogProfile(nc), nc, logger),
	}

	if nc.ChangeWebhookURL == "" {
		logger.Warn().Msg("Change webhook not configured, change alerts are disabled")
	}

	return NewService(deps, logger), nil
}
