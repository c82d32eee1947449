// Package estlatbl scrapes the Estonian-Latvian basketball league schedule.
// The site renders the schedule table client-side, so the adapter drives a
// headless browser instead of fetching raw HTML.
package estlatbl

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/platform/logging"
)

const (
	sourceName   = "estlatbl.com"
	leagueName   = "Optibet Eesti-Läti Korvpalliliiga"
	rowsSelector = "table.standings.scheduleAndResults tbody tr"
)

// rowsJS collects each schedule row's innerText lines, mirroring what the
// table shows on screen.
const rowsJS = `Array.from(document.querySelectorAll("table.standings.scheduleAndResults tbody tr")).map(tr => tr.innerText.split("\n"))`

type Adapter struct {
	url         string
	userAgent   string
	waitTimeout time.Duration
	logger      *logging.Logger
}

func New(url, userAgent string, waitTimeout time.Duration, logger *logging.Logger) *Adapter {
	return &Adapter{
		url:         url,
		userAgent:   userAgent,
		waitTimeout: waitTimeout,
		logger:      logger,
	}
}

func (a *Adapter) Source() string { return sourceName }
func (a *Adapter) Sport() string  { return event.SportBasketball }

func (a *Adapter) Run(ctx context.Context, emit func(event.Raw) error) error {
	rows, err := a.fetchRows(ctx)
	if err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "schedule rows loaded", "source", sourceName, "rows", len(rows))

	for _, row := range rows {
		raw, ok := parseRow(row)
		if !ok {
			a.logger.DebugContext(ctx, "row skipped", "source", sourceName, "row", row)
			continue
		}
		if err := emit(raw); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) fetchRows(ctx context.Context) ([][]string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserAgent(a.userAgent),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, a.waitTimeout)
	defer cancelRun()

	var rows [][]string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(a.url),
		chromedp.WaitVisible(rowsSelector, chromedp.ByQuery),
		chromedp.Evaluate(rowsJS, &rows),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "load schedule %s", a.url)
	}

	return rows, nil
}
