// scrape-all runs every source adapter over the shared worker pool. The
// football calendar sweep needs a date range; it defaults to the next 30 days
// and can be overridden with positional from/to arguments (DD.MM.YYYY).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper"
	"github.com/spordikava/ingest/internal/scraper/basketee"
	"github.com/spordikava/ingest/internal/scraper/estlatbl"
	"github.com/spordikava/ingest/internal/scraper/hockey"
	"github.com/spordikava/ingest/internal/scraper/jalgpall"
	"github.com/spordikava/ingest/internal/scraper/uisuliit"
	"github.com/spordikava/ingest/internal/usecase"
)

const dayLayout = "02.01.2006"

func main() {
	var from, to string
	switch len(os.Args) {
	case 1:
		now := time.Now()
		from = now.Format(dayLayout)
		to = now.AddDate(0, 0, 30).Format(dayLayout)
	case 3:
		from, to = os.Args[1], os.Args[2]
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [<from DD.MM.YYYY> <to DD.MM.YYYY>]\n", os.Args[0])
		os.Exit(2)
	}

	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		football, err := jalgpall.New(
			rt.Config.JalgpallBaseURL, from, to, rt.Config.SweepDelay, rt.Fetcher, rt.Logger,
		)
		if err != nil {
			return err
		}

		adapters := []scraper.Adapter{
			estlatbl.New(rt.Config.EstlatblURL, rt.Config.UserAgent, rt.Config.BrowserWaitTimeout, rt.Logger),
			basketee.New(rt.Config.BasketEeURL, rt.Config.BasketEeMaxPages, rt.Config.BasketEeSnapshotPath, rt.Fetcher, rt.Logger),
			hockey.New(rt.Config.HockeyAPIBaseURL, rt.Config.HockeyAPIKey, rt.Config.HockeyReferer, rt.Config.HockeyDivisions, rt.Fetcher, rt.Logger),
			football,
			uisuliit.New(rt.Config.UisuliitURL, rt.Fetcher, rt.Logger),
		}

		runAll := usecase.NewRunAllService(rt.Ingest, rt.Config.RunAllWorkers, rt.Logger)
		_, err = runAll.Run(ctx, adapters)
		return err
	}))
}
