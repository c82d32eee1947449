package event

import "context"

// Writer applies conflict-aware insert-or-update semantics keyed by
// (source, external_id). Implementations must keep each call a short-lived
// unit of work so concurrent adapter runs never block each other.
type Writer interface {
	Upsert(ctx context.Context, ev Canonical) (Outcome, error)
}

// RawWriter mirrors each normalized record into the per-sport raw store so
// the original extraction survives later normalizer changes.
type RawWriter interface {
	Store(ctx context.Context, ev Canonical) error
}
