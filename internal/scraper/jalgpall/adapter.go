// Package jalgpall sweeps the Estonian football federation's public match
// calendar one day at a time over an operator-supplied date range.
package jalgpall

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

const (
	sourceName     = "jalgpallee"
	federationName = "Eesti Jalgpalli Liit"
	dayLayout      = "02.01.2006"
)

type Adapter struct {
	baseURL string
	from    time.Time
	to      time.Time
	fetcher *scraper.Fetcher
	limiter *rate.Limiter
	logger  *logging.Logger
}

// New builds a sweep over [from, to] inclusive, both in DD.MM.YYYY form.
// The delay between day requests keeps the sweep polite; a month is ~31
// requests and the site throttles faster clients.
func New(baseURL, from, to string, delay time.Duration, fetcher *scraper.Fetcher, logger *logging.Logger) (*Adapter, error) {
	fromDay, err := time.Parse(dayLayout, from)
	if err != nil {
		return nil, errors.Wrapf(err, "parse from date %q", from)
	}
	toDay, err := time.Parse(dayLayout, to)
	if err != nil {
		return nil, errors.Wrapf(err, "parse to date %q", to)
	}
	if toDay.Before(fromDay) {
		return nil, errors.Newf("range end %s precedes start %s", to, from)
	}

	return &Adapter{
		baseURL: baseURL,
		from:    fromDay,
		to:      toDay,
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		logger:  logger,
	}, nil
}

func (a *Adapter) Source() string { return sourceName }
func (a *Adapter) Sport() string  { return event.SportFootball }

// Run fetches each day in the range. One day's failure is logged and the
// sweep continues; a failed day is recovered by re-running the range.
func (a *Adapter) Run(ctx context.Context, emit func(event.Raw) error) error {
	header := http.Header{}
	header.Set("Accept", "text/html,application/xhtml+xml")

	var days, failed int
	for day := a.from; !day.After(a.to); day = day.AddDate(0, 0, 1) {
		if err := a.limiter.Wait(ctx); err != nil {
			return err
		}
		days++

		dateStr := day.Format(dayLayout)
		doc, _, err := a.fetcher.GetDocument(ctx, a.dayURL(dateStr), header)
		if err != nil {
			failed++
			a.logger.WarnContext(ctx, "calendar day failed", "source", sourceName, "date", dateStr, "error", err)
			continue
		}

		rows := parseDay(doc, dateStr, a.baseURL)
		a.logger.InfoContext(ctx, "calendar day parsed", "source", sourceName, "date", dateStr, "rows", len(rows))

		for _, raw := range rows {
			if err := emit(raw); err != nil {
				return err
			}
		}
	}

	a.logger.InfoContext(ctx, "sweep finished", "source", sourceName, "days", days, "failed_days", failed)
	return nil
}

func (a *Adapter) dayURL(dateStr string) string {
	return a.baseURL + "/voistlused/calendar?date=" + url.QueryEscape(dateStr)
}
