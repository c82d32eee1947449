// Package memory holds in-memory repository implementations used by the
// usecase tests and local dry runs.
package memory

import (
	"context"
	"sync"

	"github.com/spordikava/ingest/internal/domain/event"
)

type EventWriter struct {
	mu    sync.RWMutex
	byKey map[string]event.Canonical

	// RejectAsDuplicate simulates a secondary uniqueness rule firing;
	// matching events are reported as duplicates and not stored.
	RejectAsDuplicate func(event.Canonical) bool
}

func NewEventWriter() *EventWriter {
	return &EventWriter{byKey: make(map[string]event.Canonical)}
}

func key(source, externalID string) string {
	return source + "\x00" + externalID
}

// Upsert mirrors the Postgres merge rules: refreshable fields are replaced,
// resolved ids are only filled when previously unset.
func (w *EventWriter) Upsert(_ context.Context, ev event.Canonical) (event.Outcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.RejectAsDuplicate != nil && w.RejectAsDuplicate(ev) {
		return event.OutcomeDuplicate, nil
	}

	k := key(ev.Source, ev.ExternalID)
	existing, ok := w.byKey[k]
	if !ok {
		w.byKey[k] = ev
		return event.OutcomeInserted, nil
	}

	merged := ev
	if existing.HomeTeamID != 0 {
		merged.HomeTeamID = existing.HomeTeamID
	}
	if existing.AwayTeamID != 0 {
		merged.AwayTeamID = existing.AwayTeamID
	}
	if existing.VenueID != 0 {
		merged.VenueID = existing.VenueID
	}
	if existing.LeagueNodeID != 0 {
		merged.LeagueNodeID = existing.LeagueNodeID
	}
	w.byKey[k] = merged

	return event.OutcomeUpdated, nil
}

func (w *EventWriter) Get(source, externalID string) (event.Canonical, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ev, ok := w.byKey[key(source, externalID)]
	return ev, ok
}

func (w *EventWriter) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.byKey)
}

// RawStore satisfies event.RawWriter by keeping the latest record per key.
type RawStore struct {
	mu    sync.RWMutex
	byKey map[string]event.Canonical
}

func NewRawStore() *RawStore {
	return &RawStore{byKey: make(map[string]event.Canonical)}
}

func (s *RawStore) Store(_ context.Context, ev event.Canonical) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key(ev.Source, ev.ExternalID)] = ev
	return nil
}

func (s *RawStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byKey)
}
