package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/format"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/aleister1102/pdfwatch/internal/notifier/discord"
	"github.com/rs/zerolog"
)

// DiscordSink renders files as Discord embeds and posts them to a webhook.
type DiscordSink struct {
	webhook   *discord.WebhookClient
	profile   SinkProfile
	batchSize int
	color     int
	footer    string
	username  string
	location  *time.Location
	now       func() time.Time
	logger    zerolog.Logger
}

// NewDiscordSink creates a sink posting to webhookURL. An empty URL yields a
// sink that sends nothing.
func NewDiscordSink(poster discord.JSONPoster, webhookURL string, profile SinkProfile, cfg config.NotificationConfig, logger zerolog.Logger) *DiscordSink {
	sinkLogger := logger.With().Str("module", "DiscordSink").Str("sink", profile.Title).Logger()
	return &DiscordSink{
		webhook:   discord.NewWebhookClient(poster, webhookURL, sinkLogger),
		profile:   profile,
		batchSize: cfg.BatchSize,
		color:     cfg.EmbedColor,
		footer:    cfg.FooterText,
		username:  cfg.Username,
		location:  cfg.Location(),
		now:       time.Now,
		logger:    sinkLogger,
	}
}

// Enabled reports whether the sink has a webhook to post to.
func (s *DiscordSink) Enabled() bool {
	return s.webhook.Enabled()
}

// Notify sends files as one or more webhook messages. Every message is
// attempted; the errors of failed ones are joined.
func (s *DiscordSink) Notify(ctx context.Context, files []models.FileRecord, pageURL string) error {
	if !s.Enabled() {
		s.logger.Debug().Msg("Sink disabled, skipping notification")
		return nil
	}

	embeds, err := s.BuildEmbeds(files, pageURL)
	if err != nil {
		return err
	}

	var errs []error
	for _, batch := range discord.BatchEmbeds(embeds) {
		builder := discord.NewDiscordMessagePayloadBuilder().WithUsername(s.username)
		for _, e := range batch {
			builder.AddEmbed(e)
		}
		if err := s.webhook.Send(ctx, builder.Build()); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info().Int("files", len(files)).Int("embeds", len(embeds)).Msg("Notification sent")
	return nil
}

// BuildEmbeds renders files into embeds of at most batchSize rows each. A
// batch is split further so that no column passes the field value limit.
func (s *DiscordSink) BuildEmbeds(files []models.FileRecord, pageURL string) ([]discord.DiscordEmbed, error) {
	now := s.now()

	if len(files) == 0 {
		embed, err := s.newEmbed(pageURL, now).WithDescription(NoFilesDescription).Build()
		if err != nil {
			return nil, err
		}
		return []discord.DiscordEmbed{embed}, nil
	}

	rows := make([][]string, len(files))
	for i, rec := range files {
		rows[i] = s.renderRow(rec)
	}

	var embeds []discord.DiscordEmbed
	for _, batch := range format.ChunkRows(rows, s.batchSize) {
		for _, group := range splitByWidth(batch, len(s.profile.Columns), discord.MaxFieldValueLength) {
			builder := s.newEmbed(pageURL, now)
			for c, col := range s.profile.Columns {
				cells := make([]string, len(group))
				for i, row := range group {
					cells[i] = row[c]
				}
				builder.AddField(col.Name, truncateString(joinCells(cells), discord.MaxFieldValueLength), true)
			}

			embed, err := builder.Build()
			if err != nil {
				return nil, err
			}
			embeds = append(embeds, embed)
		}
	}
	return embeds, nil
}

func (s *DiscordSink) renderRow(rec models.FileRecord) []string {
	row := make([]string, len(s.profile.Columns))
	for c, col := range s.profile.Columns {
		row[c] = cellText(col.Cell(rec, s.location))
	}
	return row
}

func (s *DiscordSink) newEmbed(pageURL string, now time.Time) *discord.DiscordEmbedBuilder {
	return discord.NewDiscordEmbedBuilder().
		WithTitle(s.profile.Title).
		WithURL(pageURL).
		WithColor(s.color).
		WithTimestamp(now).
		WithFooter(s.footer, "")
}
