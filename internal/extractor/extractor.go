package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/rs/zerolog"
)

// LinkExtractor finds file links in page markup.
type LinkExtractor struct {
	selector       string
	labelAttribute string
	logger         zerolog.Logger
}

// NewLinkExtractor builds an extractor for the configured file extension.
func NewLinkExtractor(cfg config.ExtractorConfig, logger zerolog.Logger) *LinkExtractor {
	ext := cfg.FileExtension
	if ext == "" {
		ext = config.DefaultFileExtension
	}
	return &LinkExtractor{
		selector:       buildSelector(ext),
		labelAttribute: cfg.LabelAttribute,
		logger:         logger.With().Str("module", "LinkExtractor").Logger(),
	}
}

// buildSelector matches hrefs that end with ext or carry it before a query.
func buildSelector(ext string) string {
	quoted := strings.ReplaceAll(ext, `"`, `\"`)
	return fmt.Sprintf(`a[href$="%s"], a[href*="%s?"]`, quoted, quoted)
}

// Extract returns one record per distinct resolved URL in document order.
// Only URL and Label are set.
func (e *LinkExtractor) Extract(markup string, base *url.URL) ([]models.FileRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse page markup")
	}

	records := make([]models.FileRecord, 0)
	seen := make(map[string]struct{})

	doc.Find(e.selector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}

		resolved, ok := resolveReference(base, href)
		if !ok {
			e.logger.Debug().Str("href", href).Msg("Skipping unresolvable link")
			return
		}
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}

		record := models.FileRecord{URL: resolved}
		if e.labelAttribute != "" {
			record.Label = strings.TrimSpace(s.AttrOr(e.labelAttribute, ""))
		}
		records = append(records, record)
	})

	e.logger.Debug().Int("count", len(records)).Msg("Extracted file links")
	return records, nil
}
