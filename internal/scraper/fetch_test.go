package scraper

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spordikava/ingest/internal/platform/logging"
)

func TestFetcherGet(t *testing.T) {
	var gotUA, gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	header := http.Header{}
	header.Set("Referer", "https://example.org/")
	body, err := f.Get(context.Background(), srv.URL, header)
	require.NoError(t, err)

	assert.Contains(t, string(body), "ok")
	assert.Equal(t, "test-agent/1.0", gotUA)
	assert.Equal(t, "https://example.org/", gotReferer)
}

func TestFetcherGetBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	_, err := f.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadStatus))
}

func TestFetcherGetRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), maxResponseBytes+1))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	_, err := f.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResponseTooLarge))
}

func TestFetcherGetAcceptsBodyAtCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), maxResponseBytes))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	body, err := f.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Len(t, body, maxResponseBytes)
}

func TestFetcherGetDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><table><tr><td class="name">Kalev</td></tr></table></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	doc, raw, err := f.GetDocument(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, "Kalev", doc.Find("td.name").Text())
	assert.Contains(t, string(raw), "Kalev")
}

func TestFetcherHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Get(ctx, srv.URL, nil)
	assert.Error(t, err)
}
