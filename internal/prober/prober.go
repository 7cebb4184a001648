package prober

import (
	"context"
	"strconv"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// HeadClient issues HEAD requests.
type HeadClient interface {
	Head(ctx context.Context, target string) (*httpclient.HTTPResponse, error)
}

// MetadataProber reads file metadata from response headers.
type MetadataProber struct {
	client      HeadClient
	concurrency int
	logger      zerolog.Logger
}

// NewMetadataProber creates a prober. A concurrency below 2 probes
// sequentially.
func NewMetadataProber(client HeadClient, concurrency int, logger zerolog.Logger) *MetadataProber {
	if concurrency < 1 {
		concurrency = 1
	}
	return &MetadataProber{
		client:      client,
		concurrency: concurrency,
		logger:      logger.With().Str("module", "MetadataProber").Logger(),
	}
}

// Probe sends one HEAD request. It never fails: transport errors produce an
// empty result carrying Err, and every status code is accepted.
func (p *MetadataProber) Probe(ctx context.Context, target string) models.ProbeResult {
	result := models.ProbeResult{URL: target}

	resp, err := p.client.Head(ctx, target)
	if err != nil {
		result.Err = err
		return result
	}

	result.StatusCode = resp.StatusCode
	result.Metadata = models.FileMetadata{
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		Length:       parseContentLength(resp.Header.Get("Content-Length")),
	}
	return result
}

// ProbeAll returns copies of records carrying probed metadata, in input order.
func (p *MetadataProber) ProbeAll(ctx context.Context, records []models.FileRecord) []models.FileRecord {
	out, _ := p.ProbeAllCounted(ctx, records)
	return out
}

// ProbeAllCounted is ProbeAll that also reports how many probes failed.
func (p *MetadataProber) ProbeAllCounted(ctx context.Context, records []models.FileRecord) ([]models.FileRecord, int) {
	results := make([]models.ProbeResult, len(records))

	if p.concurrency == 1 {
		for i, r := range records {
			results[i] = p.Probe(ctx, r.URL)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.concurrency)
		for i, r := range records {
			g.Go(func() error {
				results[i] = p.Probe(gctx, r.URL)
				return nil
			})
		}
		_ = g.Wait()
	}

	out := make([]models.FileRecord, len(records))
	partial := 0
	for i, r := range records {
		res := results[i]
		if res.Partial() {
			partial++
			p.logger.Warn().Err(res.Err).Str("url", r.URL).Msg("Metadata probe failed")
		} else if res.StatusCode >= 400 {
			p.logger.Debug().Str("url", r.URL).Int("status_code", res.StatusCode).Msg("Metadata probe returned error status")
		}
		out[i] = r.WithMetadata(res.Metadata)
	}

	p.logger.Debug().Int("count", len(records)).Int("partial", partial).Msg("Metadata probes finished")
	return out, partial
}

func parseContentLength(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
