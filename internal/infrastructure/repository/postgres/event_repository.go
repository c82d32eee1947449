package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/domain/event"
	qb "github.com/spordikava/ingest/internal/platform/querybuilder"
)

// eventUpsertSuffix refreshes everything a source may legitimately change
// between runs. Resolved ids are only filled when still NULL so operator
// curation survives re-ingestion, and scraped_at never moves backwards.
const eventUpsertSuffix = `ON CONFLICT (source, external_id) DO UPDATE SET
    league = EXCLUDED.league,
    league_node_id = COALESCE(events.league_node_id, EXCLUDED.league_node_id),
    round = EXCLUDED.round,
    date = EXCLUDED.date,
    date_end = EXCLUDED.date_end,
    time = EXCLUDED.time,
    title = EXCLUDED.title,
    subtitle = EXCLUDED.subtitle,
    home_team_name = EXCLUDED.home_team_name,
    home_team_code = EXCLUDED.home_team_code,
    away_team_name = EXCLUDED.away_team_name,
    away_team_code = EXCLUDED.away_team_code,
    home_team_id = COALESCE(events.home_team_id, EXCLUDED.home_team_id),
    away_team_id = COALESCE(events.away_team_id, EXCLUDED.away_team_id),
    raw_venue = EXCLUDED.raw_venue,
    venue_id = COALESCE(events.venue_id, EXCLUDED.venue_id),
    raw_city = EXCLUDED.raw_city,
    broadcast = EXCLUDED.broadcast,
    organizer = EXCLUDED.organizer,
    federation_name = EXCLUDED.federation_name,
    federation_link = EXCLUDED.federation_link,
    ticket_link = EXCLUDED.ticket_link,
    match_link = EXCLUDED.match_link,
    raw_payload = EXCLUDED.raw_payload,
    scraped_at = GREATEST(events.scraped_at, NOW())
RETURNING (xmax = 0) AS inserted`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Upsert writes one canonical event as its own short-lived statement.
// xmax = 0 holds only for freshly inserted row versions, which is how the
// outcome distinguishes insert from update without a second round trip.
func (r *EventRepository) Upsert(ctx context.Context, ev event.Canonical) (event.Outcome, error) {
	query, args, err := qb.InsertModel("events", newEventInsertModel(ev), eventUpsertSuffix)
	if err != nil {
		return 0, fmt.Errorf("build upsert event query: %w", err)
	}

	var inserted bool
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return event.OutcomeDuplicate, nil
		}
		return 0, fmt.Errorf("upsert event source=%s external_id=%s: %w", ev.Source, ev.ExternalID, err)
	}

	if inserted {
		return event.OutcomeInserted, nil
	}
	return event.OutcomeUpdated, nil
}
