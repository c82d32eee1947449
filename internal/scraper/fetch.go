package scraper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/spordikava/ingest/internal/platform/logging"
)

const maxResponseBytes = 6 << 20

// ErrBadStatus marks responses outside the 2xx range. Callers that tolerate
// missing pages test for it with errors.Is.
var ErrBadStatus = errors.New("unexpected response status")

// ErrResponseTooLarge marks bodies over the size cap. A truncated page would
// silently lose trailing rows, so the fetch fails instead.
var ErrResponseTooLarge = errors.New("response body exceeds size cap")

// Fetcher is the shared outbound HTTP client for the HTML and JSON adapters.
// Every request carries the configured User-Agent; several of the sources
// serve different markup (or nothing) to non-browser agents.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    *logging.Logger
}

func NewFetcher(timeout time.Duration, userAgent string, logger *logging.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Get performs a GET and returns the response body. Extra headers are applied
// after the defaults, so callers can override Accept or add a Referer.
func (f *Fetcher) Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request %s", rawURL)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")
	for key, values := range header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	// read one byte past the cap so an at-capacity body is distinguishable
	// from an oversized one
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxResponseBytes+1)); err != nil {
		return nil, errors.Wrapf(err, "read body %s", rawURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(ErrBadStatus, "GET %s: status %d", rawURL, resp.StatusCode)
	}
	if buf.Len() > maxResponseBytes {
		return nil, errors.Wrapf(ErrResponseTooLarge, "GET %s: body over %d bytes", rawURL, maxResponseBytes)
	}

	body := make([]byte, buf.Len())
	copy(body, buf.B)
	return body, nil
}

// GetDocument fetches a page and parses it into a goquery document.
func (f *Fetcher) GetDocument(ctx context.Context, rawURL string, header http.Header) (*goquery.Document, []byte, error) {
	body, err := f.Get(ctx, rawURL, header)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse html %s", rawURL)
	}
	return doc, body, nil
}
