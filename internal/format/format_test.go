package format

import (
	"testing"
	"time"

	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   *int64
		want string
	}{
		{"nil", nil, ""},
		{"zero", models.Int64Ptr(0), ""},
		{"bytes", models.Int64Ptr(500), "500 B"},
		{"exact kilobytes", models.Int64Ptr(2048), "2 KB"},
		{"fractional kilobytes", models.Int64Ptr(1536), "1.5 KB"},
		{"rounded kilobytes", models.Int64Ptr(15 * 1024), "15 KB"},
		{"megabytes", models.Int64Ptr(3*1024*1024 + 300*1024), "3.3 MB"},
		{"gigabytes cap", models.Int64Ptr(5 * 1024 * 1024 * 1024 * 1024), "5120 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.in))
		})
	}
}

func TestDate(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*3600)

	assert.Equal(t, "", Date("", berlin))
	assert.Equal(t, "`13.10.25, 10:00:00`", Date("Mon, 13 Oct 2025 08:00:00 GMT", berlin))
	assert.Equal(t, "`13.10.25, 08:00:00`", Date("2025-10-13T08:00:00Z", time.UTC))
	assert.Equal(t, "`garbage`", Date("garbage", time.UTC))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name   string
		record models.FileRecord
		want   string
	}{
		{
			name:   "captured label",
			record: models.FileRecord{URL: "https://x.test/a.pdf", Label: "  Monday "},
			want:   "[Monday](https://x.test/a.pdf)",
		},
		{
			name:   "decoded filename",
			record: models.FileRecord{URL: "https://x.test/docs/report%20final.pdf"},
			want:   "[report final.pdf](https://x.test/docs/report%20final.pdf)",
		},
		{
			name:   "query string ignored",
			record: models.FileRecord{URL: "https://x.test/docs/plan.pdf?ver=2"},
			want:   "[plan.pdf](https://x.test/docs/plan.pdf?ver=2)",
		},
		{
			name:   "trailing slash falls back to url",
			record: models.FileRecord{URL: "https://x.test/docs/"},
			want:   "[https://x.test/docs/](https://x.test/docs/)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.record))
		})
	}
}

func TestChunkRows(t *testing.T) {
	rows := make([]int, 32)
	for i := range rows {
		rows[i] = i
	}

	chunks := ChunkRows(rows, 15)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 15)
	assert.Len(t, chunks[1], 15)
	assert.Len(t, chunks[2], 2)
	assert.Equal(t, 15, chunks[1][0])
	assert.Equal(t, 31, chunks[2][1])
}

func TestChunkRows_EdgeCases(t *testing.T) {
	assert.Empty(t, ChunkRows([]string{}, 15))
	assert.Len(t, ChunkRows(make([]string, 16), 0), 2, "non-positive size uses default")
	assert.Len(t, ChunkRows(make([]string, 15), 15), 1)
}
