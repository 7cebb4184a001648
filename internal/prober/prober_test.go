package prober

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *httpclient.HTTPClient {
	t.Helper()
	c, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(5 * time.Second).WithHTTP2(false).Build()
	require.NoError(t, err)
	return c
}

func fileServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/full.pdf":
			w.Header().Set("ETag", `"v1"`)
			w.Header().Set("Last-Modified", "Mon, 13 Oct 2025 08:00:00 GMT")
			w.Header().Set("Content-Length", "2048")
		case "/bad-length.pdf":
			w.Header().Set("ETag", `"v2"`)
			w.Header().Set("Content-Length", "lots")
		case "/moved.pdf":
			http.Redirect(w, r, "/full.pdf", http.StatusMovedPermanently)
			return
		case "/missing.pdf":
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestProbe_ReadsHeaders(t *testing.T) {
	srv := fileServer(t)
	defer srv.Close()
	p := NewMetadataProber(newClient(t), 1, zerolog.Nop())

	res := p.Probe(context.Background(), srv.URL+"/full.pdf")

	assert.False(t, res.Partial())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `"v1"`, res.Metadata.ETag)
	assert.Equal(t, "Mon, 13 Oct 2025 08:00:00 GMT", res.Metadata.LastModified)
	require.NotNil(t, res.Metadata.Length)
	assert.Equal(t, int64(2048), *res.Metadata.Length)
}

func TestProbe_FollowsRedirects(t *testing.T) {
	srv := fileServer(t)
	defer srv.Close()

	res := NewMetadataProber(newClient(t), 1, zerolog.Nop()).Probe(context.Background(), srv.URL+"/moved.pdf")

	assert.Equal(t, `"v1"`, res.Metadata.ETag)
}

func TestProbe_IgnoresUnparseableLength(t *testing.T) {
	srv := fileServer(t)
	defer srv.Close()

	res := NewMetadataProber(newClient(t), 1, zerolog.Nop()).Probe(context.Background(), srv.URL+"/bad-length.pdf")

	assert.Equal(t, `"v2"`, res.Metadata.ETag)
	assert.Nil(t, res.Metadata.Length)
}

func TestProbe_ErrorStatusIsNotAFailure(t *testing.T) {
	srv := fileServer(t)
	defer srv.Close()

	res := NewMetadataProber(newClient(t), 1, zerolog.Nop()).Probe(context.Background(), srv.URL+"/missing.pdf")

	assert.False(t, res.Partial())
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.True(t, res.Metadata.IsEmpty())
}

func TestProbe_TransportFailureIsSwallowed(t *testing.T) {
	srv := fileServer(t)
	target := srv.URL + "/full.pdf"
	srv.Close()

	res := NewMetadataProber(newClient(t), 1, zerolog.Nop()).Probe(context.Background(), target)

	assert.True(t, res.Partial())
	assert.True(t, res.Metadata.IsEmpty())
}

func TestParseContentLength(t *testing.T) {
	tests := []struct {
		in   string
		want *int64
	}{
		{"", nil},
		{"0", models.Int64Ptr(0)},
		{" 42 ", models.Int64Ptr(42)},
		{"-1", nil},
		{"1e3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseContentLength(tt.in))
		})
	}
}

func TestProbeAll_KeepsOrderAndLabels(t *testing.T) {
	srv := fileServer(t)
	defer srv.Close()

	records := []models.FileRecord{
		{URL: srv.URL + "/missing.pdf", Label: "gone"},
		{URL: srv.URL + "/full.pdf", Label: "full"},
	}

	for _, concurrency := range []int{1, 4} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			got, partial := NewMetadataProber(newClient(t), concurrency, zerolog.Nop()).ProbeAllCounted(context.Background(), records)

			require.Len(t, got, 2)
			assert.Zero(t, partial)
			assert.Equal(t, "gone", got[0].Label)
			assert.Empty(t, got[0].ETag)
			assert.Equal(t, "full", got[1].Label)
			assert.Equal(t, `"v1"`, got[1].ETag)
			assert.Empty(t, records[1].ETag, "input must not be mutated")
		})
	}
}

type stubHead struct {
	inFlight, peak atomic.Int32
}

func (s *stubHead) Head(ctx context.Context, target string) (*httpclient.HTTPResponse, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	if target == "fail" {
		return nil, fmt.Errorf("dial failed")
	}
	return &httpclient.HTTPResponse{StatusCode: http.StatusOK, Header: http.Header{"Etag": {target}}}, nil
}

func TestProbeAll_BoundedParallelism(t *testing.T) {
	stub := &stubHead{}
	records := make([]models.FileRecord, 12)
	for i := range records {
		records[i] = models.FileRecord{URL: fmt.Sprintf("u%d", i)}
	}
	records[5].URL = "fail"

	got, partial := NewMetadataProber(stub, 3, zerolog.Nop()).ProbeAllCounted(context.Background(), records)

	assert.LessOrEqual(t, stub.peak.Load(), int32(3))
	assert.Equal(t, 1, partial)
	for i, r := range got {
		if i == 5 {
			assert.Empty(t, r.ETag)
			continue
		}
		assert.Equal(t, fmt.Sprintf("u%d", i), r.ETag)
	}
}

func TestProbeAll_UnreachableHostKeepsRecords(t *testing.T) {
	srv := fileServer(t)
	base := srv.URL
	srv.Close()

	records := []models.FileRecord{
		{URL: base + "/full.pdf", Label: "Montag"},
		{URL: base + "/missing.pdf"},
	}

	got := NewMetadataProber(newClient(t), 1, zerolog.Nop()).ProbeAll(context.Background(), records)

	require.Len(t, got, 2)
	assert.Equal(t, records[0].URL, got[0].URL)
	assert.Equal(t, "Montag", got[0].Label)
	for _, r := range got {
		assert.Empty(t, r.ETag)
		assert.Empty(t, r.LastModified)
		assert.Nil(t, r.Length)
	}
}
