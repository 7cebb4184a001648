package monitor

import (
	"context"
	"net/url"
	"time"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/differ"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/aleister1102/pdfwatch/internal/notifier"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PageSource unlocks and downloads the watched page.
type PageSource interface {
	Authenticate(ctx context.Context) error
	FetchPage(ctx context.Context) (string, error)
	PageURL() *url.URL
}

// LinkExtractor finds file links in page markup.
type LinkExtractor interface {
	Extract(markup string, base *url.URL) ([]models.FileRecord, error)
}

// MetadataProber enriches records with HEAD metadata.
type MetadataProber interface {
	ProbeAllCounted(ctx context.Context, records []models.FileRecord) ([]models.FileRecord, int)
}

// SnapshotStore persists the last known file list.
type SnapshotStore interface {
	Load() (models.Snapshot, error)
	Save(snapshot models.Snapshot) error
}

// Service runs check cycles against one watched page.
type Service struct {
	source     PageSource
	extractor  LinkExtractor
	prober     MetadataProber
	store      SnapshotStore
	changeSink notifier.NotificationSink
	logSink    notifier.NotificationSink
	now        func() time.Time
	logger     zerolog.Logger
}

// Dependencies groups the collaborators of a Service.
type Dependencies struct {
	Source     PageSource
	Extractor  LinkExtractor
	Prober     MetadataProber
	Store      SnapshotStore
	ChangeSink notifier.NotificationSink
	LogSink    notifier.NotificationSink
}

// NewService creates a Service. Nil sinks are replaced by no-op sinks.
func NewService(deps Dependencies, logger zerolog.Logger) *Service {
	changeSink, logSink := deps.ChangeSink, deps.LogSink
	if changeSink == nil {
		changeSink = notifier.Nop{}
	}
	if logSink == nil {
		logSink = notifier.Nop{}
	}
	return &Service{
		source:     deps.Source,
		extractor:  deps.Extractor,
		prober:     deps.Prober,
		store:      deps.Store,
		changeSink: changeSink,
		logSink:    logSink,
		now:        time.Now,
		logger:     logger.With().Str("module", "MonitorService").Logger(),
	}
}

// RunCycle performs one check: login, fetch, extract, probe, diff, notify
// and persist. Login, fetch, extraction and snapshot I/O failures abort the
// cycle; probe and notification failures are logged and recorded in the
// summary.
func (s *Service) RunCycle(ctx context.Context) (*models.RunSummary, error) {
	pageURL := s.source.PageURL()
	summary := &models.RunSummary{
		RunID:     uuid.NewString(),
		PageURL:   pageURL.String(),
		StartTime: s.now(),
	}
	log := s.logger.With().Str("run_id", summary.RunID).Logger()
	log.Info().Str("page_url", summary.PageURL).Msg("Starting check cycle")

	fail := func(err error, msg string) (*models.RunSummary, error) {
		summary.Status = models.RunStatusFailed
		summary.EndTime = s.now()
		wrapped := errorwrapper.WrapError(err, msg)
		log.Error().Err(err).Dur("duration", summary.Duration()).Msg(msg)
		return summary, wrapped
	}

	if err := s.source.Authenticate(ctx); err != nil {
		return fail(err, "login failed")
	}

	markup, err := s.source.FetchPage(ctx)
	if err != nil {
		return fail(err, "page fetch failed")
	}

	found, err := s.extractor.Extract(markup, pageURL)
	if err != nil {
		return fail(err, "link extraction failed")
	}
	summary.FilesFound = len(found)
	log.Info().Int("files", len(found)).Msg("Extracted file links")

	current, partial := s.prober.ProbeAllCounted(ctx, found)
	summary.PartialProbes = partial

	previous, err := s.store.Load()
	if err != nil {
		return fail(err, "snapshot load failed")
	}

	decision := differ.Decide(current, previous, s.now())
	summary.NewFiles = decision.Changes.Count(models.ChangeNew)
	summary.ChangedFiles = decision.Changes.Count(models.ChangeModified)

	if decision.Changed {
		summary.Status = models.RunStatusChanged
		for _, c := range decision.Changes.Changes {
			log.Info().Str("url", c.Record.URL).Str("kind", string(c.Kind)).Msg("File change detected")
		}
		s.notify(ctx, log, s.changeSink, "change", decision.Changes.Records(), summary)
	} else {
		summary.Status = models.RunStatusUnchanged
	}

	if err := s.store.Save(decision.Next); err != nil {
		return fail(err, "snapshot save failed")
	}
	summary.SnapshotWritten = true

	s.notify(ctx, log, s.logSink, "log", current, summary)

	summary.EndTime = s.now()
	log.Info().
		Str("status", string(summary.Status)).
		Int("files", summary.FilesFound).
		Int("new", summary.NewFiles).
		Int("changed", summary.ChangedFiles).
		Int("partial_probes", summary.PartialProbes).
		Int("notification_errors", len(summary.NotificationErrors)).
		Dur("duration", summary.Duration()).
		Msg("Check cycle finished")

	return summary, nil
}

func (s *Service) notify(ctx context.Context, log zerolog.Logger, sink notifier.NotificationSink, name string, files []models.FileRecord, summary *models.RunSummary) {
	if err := sink.Notify(ctx, files, summary.PageURL); err != nil {
		log.Error().Err(err).Str("sink", name).Msg("Notification failed")
		summary.NotificationErrors = append(summary.NotificationErrors, name+": "+err.Error())
	}
}
