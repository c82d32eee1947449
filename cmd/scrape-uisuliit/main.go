package main

import (
	"context"
	"os"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper/uisuliit"
)

func main() {
	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		adapter := uisuliit.New(rt.Config.UisuliitURL, rt.Fetcher, rt.Logger)
		return rt.RunOne(ctx, adapter)
	}))
}
