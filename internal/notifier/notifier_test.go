package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/format"
	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/aleister1102/pdfwatch/internal/notifier/discord"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type webhookRecorder struct {
	mu       sync.Mutex
	payloads []discord.DiscordMessagePayload
	status   int
}

func (w *webhookRecorder) server(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		var p discord.DiscordMessagePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		w.mu.Lock()
		w.payloads = append(w.payloads, p)
		w.mu.Unlock()
		if w.status != 0 {
			rw.WriteHeader(w.status)
			_, _ = rw.Write([]byte("rate limited"))
			return
		}
		rw.WriteHeader(http.StatusNoContent)
	}))
}

func newSink(t *testing.T, webhookURL string, profile func(config.NotificationConfig) SinkProfile) *DiscordSink {
	t.Helper()
	poster, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(5 * time.Second).WithHTTP2(false).Build()
	require.NoError(t, err)

	cfg := config.NewDefaultNotificationConfig()
	sink := NewDiscordSink(poster, webhookURL, profile(cfg), cfg, zerolog.Nop())
	sink.now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }
	return sink
}

func files(n int) []models.FileRecord {
	out := make([]models.FileRecord, n)
	for i := range out {
		out[i] = models.FileRecord{URL: fmt.Sprintf("https://h/f%02d.pdf", i)}
	}
	return out
}

func TestDiscordSink_ChangeEmbedShape(t *testing.T) {
	rec := &webhookRecorder{}
	srv := rec.server(t)
	defer srv.Close()

	sink := newSink(t, srv.URL, ChangeProfile)
	err := sink.Notify(context.Background(), []models.FileRecord{
		{URL: "https://h/Montag.pdf", Label: "Montag", LastModified: "Mon, 13 Oct 2025 08:00:00 GMT", Length: models.Int64Ptr(2048)},
		{URL: "https://h/Vertretung%20Dienstag.pdf"},
	}, "https://h/plan/")
	require.NoError(t, err)

	require.Len(t, rec.payloads, 1)
	p := rec.payloads[0]
	require.NotNil(t, p.AllowedMentions)
	assert.Empty(t, p.AllowedMentions.Parse)
	require.Len(t, p.Embeds, 1)

	e := p.Embeds[0]
	assert.Equal(t, config.DefaultChangeTitle, e.Title)
	assert.Equal(t, "https://h/plan/", e.URL)
	assert.Equal(t, config.DefaultEmbedColor, e.Color)
	assert.Equal(t, "2026-10-14T08:00:00Z", e.Timestamp)
	require.NotNil(t, e.Footer)
	assert.Equal(t, config.DefaultFooterText, e.Footer.Text)

	require.Len(t, e.Fields, 3)
	assert.Equal(t, discord.DiscordEmbedField{Name: "Name", Value: "[Montag](https://h/Montag.pdf)\n[Vertretung Dienstag](https://h/Vertretung%20Dienstag.pdf)", Inline: true}, e.Fields[0])
	assert.Equal(t, "2 KB\n—", e.Fields[1].Value)
	assert.Equal(t, "`13.10.25, 10:00:00`\n—", e.Fields[2].Value)
}

func TestDiscordSink_LogProfileHasETagColumn(t *testing.T) {
	sink := newSink(t, "https://discord.test/hook", LogProfile)

	embeds, err := sink.BuildEmbeds([]models.FileRecord{{URL: "https://h/a.pdf", ETag: `"abc"`}}, "")
	require.NoError(t, err)

	require.Len(t, embeds, 1)
	names := []string{}
	for _, f := range embeds[0].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Name", "eTag", "Size", "Last Modified"}, names)
	assert.Equal(t, `"abc"`, embeds[0].Fields[1].Value)
	assert.Equal(t, config.DefaultLogTitle, embeds[0].Title)
}

func TestDiscordSink_ChunksRowsAndEmbeds(t *testing.T) {
	rec := &webhookRecorder{}
	srv := rec.server(t)
	defer srv.Close()

	sink := newSink(t, srv.URL, LogProfile)

	embeds, err := sink.BuildEmbeds(files(32), "")
	require.NoError(t, err)
	require.Len(t, embeds, 3)
	assert.Equal(t, 15, strings.Count(embeds[0].Fields[0].Value, "\n")+1)
	assert.Equal(t, 2, strings.Count(embeds[2].Fields[0].Value, "\n")+1)

	// 160 rows make 11 embeds, more than one message holds
	require.NoError(t, sink.Notify(context.Background(), files(160), ""))
	require.Len(t, rec.payloads, 2)
	assert.Len(t, rec.payloads[0].Embeds, 10)
	assert.Len(t, rec.payloads[1].Embeds, 1)
}

func TestDiscordSink_EmptyListSendsNoFilesEmbed(t *testing.T) {
	rec := &webhookRecorder{}
	srv := rec.server(t)
	defer srv.Close()

	require.NoError(t, newSink(t, srv.URL, LogProfile).Notify(context.Background(), nil, "https://h/plan/"))

	require.Len(t, rec.payloads, 1)
	require.Len(t, rec.payloads[0].Embeds, 1)
	assert.Equal(t, NoFilesDescription, rec.payloads[0].Embeds[0].Description)
	assert.Empty(t, rec.payloads[0].Embeds[0].Fields)
}

func TestDiscordSink_OversizedRowTruncatedAlone(t *testing.T) {
	sink := newSink(t, "https://discord.test/hook", ChangeProfile)
	records := []models.FileRecord{
		{URL: "https://h/a.pdf"},
		{URL: "https://h/" + strings.Repeat("x", 1100) + ".pdf"},
		{URL: "https://h/b.pdf"},
	}

	embeds, err := sink.BuildEmbeds(records, "")
	require.NoError(t, err)

	require.Len(t, embeds, 3)
	assert.Equal(t, "[a.pdf](https://h/a.pdf)", embeds[0].Fields[0].Value)
	v := embeds[1].Fields[0].Value
	assert.Equal(t, discord.MaxFieldValueLength, len([]rune(v)))
	assert.True(t, strings.HasSuffix(v, "..."))
	assert.Equal(t, "[b.pdf](https://h/b.pdf)", embeds[2].Fields[0].Value)
}

func TestDiscordSink_LongURLsKeepEveryRow(t *testing.T) {
	rec := &webhookRecorder{}
	srv := rec.server(t)
	defer srv.Close()

	records := make([]models.FileRecord, 60)
	for i := range records {
		records[i] = models.FileRecord{
			URL:          fmt.Sprintf("https://school.example/wp-content/uploads/2025/10/Vertretungsplan-Klasse-%02d-Montag.pdf", i),
			ETag:         fmt.Sprintf(`"%08x-%04x"`, i*7919, i),
			LastModified: "Mon, 13 Oct 2025 08:00:00 GMT",
			Length:       models.Int64Ptr(int64(150000 + i)),
		}
	}

	sink := newSink(t, srv.URL, LogProfile)
	require.NoError(t, sink.Notify(context.Background(), records, "https://school.example/vertretungsplan/"))

	var names []string
	for _, p := range rec.payloads {
		assert.LessOrEqual(t, len(p.Embeds), discord.MaxEmbedsPerMessage)
		total := 0
		for _, e := range p.Embeds {
			total += e.Length()
			require.Len(t, e.Fields, 4)
			rows := strings.Count(e.Fields[0].Value, "\n") + 1
			assert.LessOrEqual(t, rows, config.DefaultNotificationBatchSize)
			for _, f := range e.Fields {
				assert.LessOrEqual(t, len([]rune(f.Value)), discord.MaxFieldValueLength)
				assert.False(t, strings.HasSuffix(f.Value, "..."), "column %s was cut", f.Name)
				assert.Equal(t, rows, strings.Count(f.Value, "\n")+1, "column %s out of line", f.Name)
			}
			names = append(names, strings.Split(e.Fields[0].Value, "\n")...)
		}
		assert.LessOrEqual(t, total, discord.MaxTotalEmbedLength)
	}

	require.Len(t, names, len(records))
	for i, r := range records {
		assert.Equal(t, format.Label(r), names[i])
	}
}

func TestDiscordSink_Non2xxReturned(t *testing.T) {
	rec := &webhookRecorder{status: http.StatusTooManyRequests}
	srv := rec.server(t)
	defer srv.Close()

	err := newSink(t, srv.URL, ChangeProfile).Notify(context.Background(), files(1), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDiscordSink_DisabledWithoutWebhook(t *testing.T) {
	sink := newSink(t, "", ChangeProfile)

	assert.False(t, sink.Enabled())
	assert.NoError(t, sink.Notify(context.Background(), files(3), ""))
}

func TestJoinCells(t *testing.T) {
	assert.Equal(t, EmptyColumn, joinCells(nil))
	assert.Equal(t, "a\n—\nb", joinCells([]string{"a", "", "b"}))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdef", 5))
	assert.Equal(t, "äö...", truncateString("äöüßxy", 5))
}
