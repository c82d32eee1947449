package postgres

import (
	"github.com/spordikava/ingest/internal/domain/event"
)

// eventInsertModel is the column image of one canonical event write.
// scraped_at is managed in SQL, never bound here.
type eventInsertModel struct {
	Sport          string  `db:"sport"`
	Source         string  `db:"source"`
	ExternalID     string  `db:"external_id"`
	League         *string `db:"league"`
	LeagueNodeID   *int64  `db:"league_node_id"`
	Round          *string `db:"round"`
	Date           string  `db:"date"`
	DateEnd        *string `db:"date_end"`
	Time           *string `db:"time"`
	Title          *string `db:"title"`
	Subtitle       *string `db:"subtitle"`
	HomeTeamName   *string `db:"home_team_name"`
	HomeTeamCode   *string `db:"home_team_code"`
	AwayTeamName   *string `db:"away_team_name"`
	AwayTeamCode   *string `db:"away_team_code"`
	HomeTeamID     *int64  `db:"home_team_id"`
	AwayTeamID     *int64  `db:"away_team_id"`
	RawVenue       *string `db:"raw_venue"`
	VenueID        *int64  `db:"venue_id"`
	RawCity        *string `db:"raw_city"`
	Broadcast      *string `db:"broadcast"`
	Organizer      *string `db:"organizer"`
	FederationName *string `db:"federation_name"`
	FederationLink *string `db:"federation_link"`
	TicketLink     *string `db:"ticket_link"`
	MatchLink      *string `db:"match_link"`
	RawPayload     []byte  `db:"raw_payload"`
}

func newEventInsertModel(ev event.Canonical) eventInsertModel {
	return eventInsertModel{
		Sport:          ev.Sport,
		Source:         ev.Source,
		ExternalID:     ev.ExternalID,
		League:         nullableString(ev.League),
		LeagueNodeID:   nullableInt64(ev.LeagueNodeID),
		Round:          nullableString(ev.Round),
		Date:           ev.Date,
		DateEnd:        nullableString(ev.DateEnd),
		Time:           nullableString(ev.Time),
		Title:          nullableString(ev.Title),
		Subtitle:       nullableString(ev.Subtitle),
		HomeTeamName:   nullableString(ev.HomeName),
		HomeTeamCode:   nullableString(ev.HomeCode),
		AwayTeamName:   nullableString(ev.AwayName),
		AwayTeamCode:   nullableString(ev.AwayCode),
		HomeTeamID:     nullableInt64(ev.HomeTeamID),
		AwayTeamID:     nullableInt64(ev.AwayTeamID),
		RawVenue:       nullableString(ev.Venue),
		VenueID:        nullableInt64(ev.VenueID),
		RawCity:        nullableString(ev.City),
		Broadcast:      nullableString(ev.Broadcast),
		Organizer:      nullableString(ev.Organizer),
		FederationName: nullableString(ev.FederationName),
		FederationLink: nullableString(ev.FederationLink),
		TicketLink:     nullableString(ev.TicketLink),
		MatchLink:      nullableString(ev.MatchLink),
		RawPayload:     ev.Payload,
	}
}
