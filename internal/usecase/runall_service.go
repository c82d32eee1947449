package usecase

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

// AdapterResult pairs one adapter's summary with its terminal error, if any.
type AdapterResult struct {
	Source  string
	Summary RunSummary
	Err     error
}

// RunAllService fans adapters out over a bounded worker pool. Sources fail
// independently: one dead site never stops the others from ingesting.
type RunAllService struct {
	ingest  *IngestService
	workers int
	logger  *logging.Logger
}

func NewRunAllService(ingest *IngestService, workers int, logger *logging.Logger) *RunAllService {
	if workers < 1 {
		workers = 1
	}
	return &RunAllService{ingest: ingest, workers: workers, logger: logger}
}

// Run executes every adapter and returns all results sorted by source name.
// The error is non-nil when at least one source failed; results still cover
// every adapter, failed ones included.
func (s *RunAllService) Run(ctx context.Context, adapters []scraper.Adapter) ([]AdapterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "RunAllService.Run")
	defer span.End()

	if len(adapters) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no adapters")
	}

	pool, err := ants.NewPool(s.workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		failures atomic.Int64
		results  = make(chan AdapterResult, len(adapters))
	)

	for _, adapter := range adapters {
		adapter := adapter
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			summary, runErr := s.ingest.Run(ctx, adapter)
			if runErr != nil {
				failures.Add(1)
				s.logger.ErrorContext(ctx, "source ingest failed",
					"source", adapter.Source(), "error", runErr)
			}
			results <- AdapterResult{Source: adapter.Source(), Summary: summary, Err: runErr}
		})
		if submitErr != nil {
			wg.Done()
			failures.Add(1)
			results <- AdapterResult{
				Source: adapter.Source(),
				Err:    errors.Wrapf(submitErr, "submit adapter %s", adapter.Source()),
			}
		}
	}

	wg.Wait()
	close(results)

	out := make([]AdapterResult, 0, len(adapters))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })

	if n := failures.Load(); n > 0 {
		return out, errors.Newf("%d of %d sources failed", n, len(adapters))
	}
	return out, nil
}
