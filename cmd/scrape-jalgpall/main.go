package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spordikava/ingest/internal/app"
	"github.com/spordikava/ingest/internal/scraper/jalgpall"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <from DD.MM.YYYY> <to DD.MM.YYYY>\n", os.Args[0])
		os.Exit(2)
	}
	from, to := os.Args[1], os.Args[2]

	os.Exit(app.RunJob(func(ctx context.Context, rt *app.Runtime) error {
		adapter, err := jalgpall.New(
			rt.Config.JalgpallBaseURL,
			from,
			to,
			rt.Config.SweepDelay,
			rt.Fetcher,
			rt.Logger,
		)
		if err != nil {
			return err
		}
		return rt.RunOne(ctx, adapter)
	}))
}
