package estlatbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spordikava/ingest/internal/domain/event"
)

func TestParseRow(t *testing.T) {
	row := []string{"T 09.12.2025, 20:00", "Tallinn, TalTech Spordihoone", "", "TCH", "-", "OGR"}

	raw, ok := parseRow(row)
	require.True(t, ok)

	assert.Equal(t, event.SportBasketball, raw.Sport)
	assert.Equal(t, "estlatbl.com", raw.Source)
	assert.Equal(t, "T 09.12.2025, 20:00", raw.DateText)
	assert.Equal(t, "Tallinn", raw.CityText)
	assert.Equal(t, "Tallinn, TalTech Spordihoone", raw.VenueText)
	assert.Equal(t, "TCH", raw.HomeText)
	assert.Equal(t, "OGR", raw.AwayText)
	assert.Equal(t, "TCH vs OGR", raw.TitleText)
	assert.Equal(t, "Optibet Eesti-Läti Korvpalliliiga", raw.LeagueText)
}

func TestParseRowRejectsShortRows(t *testing.T) {
	_, ok := parseRow([]string{"T 09.12.2025, 20:00", "Tallinn", "", "TCH"})
	assert.False(t, ok)
}

func TestParseRowRejectsPlaceholderTeams(t *testing.T) {
	tests := [][]string{
		{"T 09.12.2025, 20:00", "Tallinn, Saal", "", "-", "-", "OGR"},
		{"T 09.12.2025, 20:00", "Tallinn, Saal", "", "TCH", "-", ""},
		{"", "Tallinn, Saal", "", "TCH", "-", "OGR"},
	}
	for _, row := range tests {
		_, ok := parseRow(row)
		assert.False(t, ok, "row %v", row)
	}
}

// The venue keeps the full location text so alias lookups and stored rows
// match what the site publishes; only the city is derived from it.
func TestVenueKeepsFullLocation(t *testing.T) {
	row := []string{"T 09.12.2025, 20:00", "Riga, Arena Riga, Halle 2", "", "TCH", "-", "OGR"}

	raw, ok := parseRow(row)
	require.True(t, ok)
	assert.Equal(t, "Riga, Arena Riga, Halle 2", raw.VenueText)
	assert.Equal(t, "Riga", raw.CityText)
}

func TestCityFrom(t *testing.T) {
	assert.Equal(t, "Tallinn", cityFrom("Tallinn, TalTech Spordihoone"))
	assert.Equal(t, "", cityFrom("Valmiera Olympic Center"))
	assert.Equal(t, "Riga", cityFrom("Riga, Arena Riga, Halle 2"))
	assert.Equal(t, "", cityFrom(""))
}
