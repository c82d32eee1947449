package main

import (
	"context"
	"os"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper/estlatbl"
)

func main() {
	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		adapter := estlatbl.New(
			rt.Config.EstlatblURL,
			rt.Config.UserAgent,
			rt.Config.BrowserWaitTimeout,
			rt.Logger,
		)
		return rt.RunOne(ctx, adapter)
	}))
}
