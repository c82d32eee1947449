package postgres

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/domain/event"
	qb "github.com/spordikava/ingest/internal/platform/querybuilder"
)

var rawTableBySport = map[string]string{
	event.SportBasketball: "raw_basketball_events",
	event.SportHockey:     "raw_hockey_events",
	event.SportFootball:   "raw_football_events",
	event.SportSkating:    "raw_skating_events",
}

// RawEventRepository mirrors normalized records into the per-sport raw
// store. All four tables share one column layout; what a source never
// supplies stays NULL.
type RawEventRepository struct {
	db    *sqlx.DB
	table string
}

func NewRawEventRepository(db *sqlx.DB, sport string) (*RawEventRepository, error) {
	table, ok := rawTableBySport[sport]
	if !ok {
		return nil, errors.Newf("no raw table for sport %q", sport)
	}
	return &RawEventRepository{db: db, table: table}, nil
}

type rawEventInsertModel struct {
	Source         string  `db:"source"`
	ExternalID     string  `db:"external_id"`
	League         *string `db:"league"`
	Date           string  `db:"date"`
	DateEnd        *string `db:"date_end"`
	Time           *string `db:"time"`
	Title          *string `db:"title"`
	Subtitle       *string `db:"subtitle"`
	Round          *string `db:"round"`
	RawVenue       *string `db:"raw_venue"`
	RawCity        *string `db:"raw_city"`
	HomeTeamName   *string `db:"home_team_name"`
	HomeTeamCode   *string `db:"home_team_code"`
	AwayTeamName   *string `db:"away_team_name"`
	AwayTeamCode   *string `db:"away_team_code"`
	Organizer      *string `db:"organizer"`
	Broadcast      *string `db:"broadcast"`
	FederationName *string `db:"federation_name"`
	FederationLink *string `db:"federation_link"`
	TicketLink     *string `db:"ticket_link"`
	MatchLink      *string `db:"match_link"`
	RawPayload     []byte  `db:"raw_payload"`
	PayloadHash    *string `db:"payload_hash"`
}

const rawUpsertSuffix = `ON CONFLICT (source, external_id) DO UPDATE SET
    league = EXCLUDED.league,
    date = EXCLUDED.date,
    date_end = EXCLUDED.date_end,
    time = EXCLUDED.time,
    title = EXCLUDED.title,
    subtitle = EXCLUDED.subtitle,
    round = EXCLUDED.round,
    raw_venue = EXCLUDED.raw_venue,
    raw_city = EXCLUDED.raw_city,
    home_team_name = EXCLUDED.home_team_name,
    home_team_code = EXCLUDED.home_team_code,
    away_team_name = EXCLUDED.away_team_name,
    away_team_code = EXCLUDED.away_team_code,
    organizer = EXCLUDED.organizer,
    broadcast = EXCLUDED.broadcast,
    federation_name = EXCLUDED.federation_name,
    federation_link = EXCLUDED.federation_link,
    ticket_link = EXCLUDED.ticket_link,
    match_link = EXCLUDED.match_link,
    raw_payload = EXCLUDED.raw_payload,
    payload_hash = EXCLUDED.payload_hash,
    scraped_at = GREATEST(%s.scraped_at, NOW())`

func (r *RawEventRepository) Store(ctx context.Context, ev event.Canonical) error {
	model := rawEventInsertModel{
		Source:         ev.Source,
		ExternalID:     ev.ExternalID,
		League:         nullableString(ev.League),
		Date:           ev.Date,
		DateEnd:        nullableString(ev.DateEnd),
		Time:           nullableString(ev.Time),
		Title:          nullableString(ev.Title),
		Subtitle:       nullableString(ev.Subtitle),
		Round:          nullableString(ev.Round),
		RawVenue:       nullableString(ev.Venue),
		RawCity:        nullableString(ev.City),
		HomeTeamName:   nullableString(ev.HomeName),
		HomeTeamCode:   nullableString(ev.HomeCode),
		AwayTeamName:   nullableString(ev.AwayName),
		AwayTeamCode:   nullableString(ev.AwayCode),
		Organizer:      nullableString(ev.Organizer),
		Broadcast:      nullableString(ev.Broadcast),
		FederationName: nullableString(ev.FederationName),
		FederationLink: nullableString(ev.FederationLink),
		TicketLink:     nullableString(ev.TicketLink),
		MatchLink:      nullableString(ev.MatchLink),
		RawPayload:     ev.Payload,
		PayloadHash:    payloadHash(ev.Payload),
	}

	suffix := fmt.Sprintf(rawUpsertSuffix, r.table)
	query, args, err := qb.InsertModel(r.table, model, suffix)
	if err != nil {
		return fmt.Errorf("build upsert raw event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil
		}
		return fmt.Errorf("upsert raw event source=%s external_id=%s: %w", ev.Source, ev.ExternalID, err)
	}

	return nil
}

func payloadHash(payload []byte) *string {
	if len(payload) == 0 {
		return nil
	}
	sum := sha1.Sum(payload)
	hash := hex.EncodeToString(sum[:])
	return &hash
}
