// Package uisuliit scrapes the Estonian skating union's season calendar,
// a single static HTML table of competitions.
package uisuliit

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

const (
	sourceName     = "uisuliit_eul_skating"
	leagueName     = "EUL kalenderplaan"
	federationName = "EUL"
	federationLink = "https://www.uisuliit.ee/"
)

type Adapter struct {
	pageURL string
	fetcher *scraper.Fetcher
	logger  *logging.Logger
}

func New(pageURL string, fetcher *scraper.Fetcher, logger *logging.Logger) *Adapter {
	return &Adapter{pageURL: pageURL, fetcher: fetcher, logger: logger}
}

func (a *Adapter) Source() string { return sourceName }
func (a *Adapter) Sport() string  { return event.SportSkating }

func (a *Adapter) Run(ctx context.Context, emit func(event.Raw) error) error {
	header := http.Header{}
	header.Set("Accept", "text/html,application/xhtml+xml")

	doc, _, err := a.fetcher.GetDocument(ctx, a.pageURL, header)
	if err != nil {
		return err
	}

	rows, skipped := parseCalendar(doc, a.pageURL)
	a.logger.InfoContext(ctx, "calendar parsed", "source", sourceName, "rows", len(rows), "skipped", skipped)

	for _, raw := range rows {
		if err := emit(raw); err != nil {
			return err
		}
	}

	return nil
}

// resolveLink absolutizes a competition detail href against the page URL.
func resolveLink(href, pageURL string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
