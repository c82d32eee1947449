package main

import (
	"context"
	"os"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper/hockey"
)

func main() {
	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		adapter := hockey.New(
			rt.Config.HockeyAPIBaseURL,
			rt.Config.HockeyAPIKey,
			rt.Config.HockeyReferer,
			rt.Config.HockeyDivisions,
			rt.Fetcher,
			rt.Logger,
		)
		return rt.RunOne(ctx, adapter)
	}))
}
