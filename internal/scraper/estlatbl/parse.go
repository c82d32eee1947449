package estlatbl

import (
	"strings"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/normalize"
)

// parseRow turns one schedule row's text lines into a raw event. Rows look
// like:
//
//	["T 09.12.2025, 20:00", "Tallinn, TalTech Spordihoone", "", "TCH", "-", "OGR"]
//
// Rows with fewer than six lines or without parsable team codes are rejected.
func parseRow(row []string) (event.Raw, bool) {
	if len(row) < 6 {
		return event.Raw{}, false
	}

	dateText := normalize.Whitespace(row[0])
	location := normalize.Whitespace(row[1])
	home := normalize.Whitespace(row[3])
	away := normalize.Whitespace(row[5])

	if dateText == "" || home == "" || home == "-" || away == "" || away == "-" {
		return event.Raw{}, false
	}

	return event.Raw{
		Sport:      event.SportBasketball,
		Source:     sourceName,
		DateText:   dateText,
		VenueText:  location,
		CityText:   cityFrom(location),
		HomeText:   home,
		AwayText:   away,
		LeagueText: leagueName,
		TitleText:  home + " vs " + away,
	}, true
}

// cityFrom reads the leading "City, ..." segment of a location. The full
// location text stays the venue value; the city is supplementary, so a
// location without a comma yields no city at all.
func cityFrom(location string) string {
	before, _, found := strings.Cut(location, ",")
	if !found {
		return ""
	}
	return normalize.Whitespace(before)
}
