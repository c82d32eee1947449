// Package basketee scrapes the Estonian basketball federation's schedule
// listing. The schedule is paginated server-side and mixes several
// competitions on one page, each in its own table.
package basketee

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

const (
	sourceName     = "basketee"
	federationName = "Eesti Korvpalliliit"
)

type Adapter struct {
	baseURL      string
	maxPages     int
	snapshotPath string
	fetcher      *scraper.Fetcher
	inferrer     LeagueInferrer
	logger       *logging.Logger
}

func New(baseURL string, maxPages int, snapshotPath string, fetcher *scraper.Fetcher, logger *logging.Logger) *Adapter {
	return &Adapter{
		baseURL:      baseURL,
		maxPages:     maxPages,
		snapshotPath: snapshotPath,
		fetcher:      fetcher,
		inferrer:     ancestorInferrer{},
		logger:       logger,
	}
}

func (a *Adapter) Source() string { return sourceName }
func (a *Adapter) Sport() string  { return event.SportBasketball }

// Run walks pages 0..maxPages. A page that answers non-2xx is logged and
// skipped; the site trims trailing pages as the season winds down.
func (a *Adapter) Run(ctx context.Context, emit func(event.Raw) error) error {
	header := http.Header{}
	header.Set("Accept-Language", "et-EE,et;q=0.9,en;q=0.8")

	for page := 0; page <= a.maxPages; page++ {
		url := a.pageURL(page)

		doc, body, err := a.fetcher.GetDocument(ctx, url, header)
		if err != nil {
			if errors.Is(err, scraper.ErrBadStatus) {
				a.logger.WarnContext(ctx, "schedule page skipped", "source", sourceName, "page", page, "error", err)
				continue
			}
			return errors.Wrapf(err, "fetch schedule page %d", page)
		}

		if page == 0 && a.snapshotPath != "" {
			if err := os.WriteFile(a.snapshotPath, body, 0o644); err != nil {
				a.logger.WarnContext(ctx, "snapshot write failed", "path", a.snapshotPath, "error", err)
			} else {
				a.logger.InfoContext(ctx, "snapshot saved", "path", a.snapshotPath)
			}
		}

		rows, skipped := parsePage(doc, a.inferrer, a.baseURL)
		a.logger.InfoContext(ctx, "schedule page parsed",
			"source", sourceName, "page", page, "rows", len(rows), "skipped", skipped)

		for _, raw := range rows {
			if err := emit(raw); err != nil {
				return err
			}
		}
	}

	return nil
}

// page 0 is the base URL itself; the site only accepts the parameter for
// later pages.
func (a *Adapter) pageURL(page int) string {
	if page == 0 {
		return a.baseURL
	}
	return fmt.Sprintf("%s&page=%d", a.baseURL, page)
}
