package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spordikava/ingest/internal/domain/team"
	"github.com/spordikava/ingest/internal/domain/venue"
)

func TestExternalIDDeterministic(t *testing.T) {
	t.Parallel()

	a := ExternalID("Meistriliiga", "12345", "2025-12-09", "TCH", "OGR")
	b := ExternalID("Meistriliiga", "12345", "2025-12-09", "TCH", "OGR")
	assert.Equal(t, a, b)
	assert.Len(t, a, 40) // sha1 hex
}

func TestExternalIDIgnoresFieldPadding(t *testing.T) {
	t.Parallel()

	a := ExternalID("Meistriliiga", "", "2025-12-09", "TCH", "OGR")
	b := ExternalID("  Meistriliiga ", "", "2025-12-09", " TCH", "OGR  ")
	assert.Equal(t, a, b)
}

func TestExternalIDFallbacks(t *testing.T) {
	t.Parallel()

	withFallbacks := ExternalID("", "", "", "", "")
	explicit := ExternalID("unknown", "none", "nodate", "home", "away")
	assert.Equal(t, explicit, withFallbacks)
}

func TestExternalIDChangesWithTupleFields(t *testing.T) {
	t.Parallel()

	base := ExternalID("Meistriliiga", "", "2025-12-09", "TCH", "OGR")
	assert.NotEqual(t, base, ExternalID("Meistriliiga", "", "2025-12-10", "TCH", "OGR"))
	assert.NotEqual(t, base, ExternalID("Meistriliiga", "", "2025-12-09", "OGR", "TCH"))
	assert.NotEqual(t, base, ExternalID("Esiliiga", "", "2025-12-09", "TCH", "OGR"))
}

func TestResolverExactMatchOnly(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	r.AddTeam(team.Team{ID: 4, Code: "TCH", Name: "TalTech"})
	r.AddTeamAlias(team.Alias{TeamID: 4, Text: "TalTech/Optibet"})
	r.AddVenue(venue.Venue{ID: 9, Name: "Sõle Spordikeskus", City: "Tallinn"})
	r.AddVenueAlias(venue.Alias{VenueID: 9, Text: "Sõle SK"})

	assert.Equal(t, int64(4), r.TeamID("TCH"))
	assert.Equal(t, int64(4), r.TeamID("  taltech/optibet "))
	assert.Equal(t, int64(9), r.VenueID("sõle spordikeskus"))
	assert.Equal(t, int64(9), r.VenueID("Sõle SK"))

	// partial spellings stay unmapped: no fuzzy matching
	assert.Zero(t, r.TeamID("TalTech/Opti"))
	assert.Zero(t, r.VenueID("Sõle"))
	assert.Zero(t, r.TeamID(""))
}
