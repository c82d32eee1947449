// Package scraper defines the source adapter contract and the shared HTTP
// fetch helper the adapters build on.
package scraper

import (
	"context"

	"github.com/spordikava/ingest/internal/domain/event"
)

// Adapter pulls one source's schedule and emits raw rows in document order.
// Run returns an error only when the whole pull is unusable (transport failure,
// page structure gone); individual malformed rows are skipped inside Run.
type Adapter interface {
	Source() string
	Sport() string
	Run(ctx context.Context, emit func(event.Raw) error) error
}
