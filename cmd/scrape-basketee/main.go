package main

import (
	"context"
	"os"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper/basketee"
)

func main() {
	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		adapter := basketee.New(
			rt.Config.BasketEeURL,
			rt.Config.BasketEeMaxPages,
			rt.Config.BasketEeSnapshotPath,
			rt.Fetcher,
			rt.Logger,
		)
		return rt.RunOne(ctx, adapter)
	}))
}
