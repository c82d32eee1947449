package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spordikava/ingest/internal/domain/leaguetree"
	"github.com/spordikava/ingest/internal/domain/team"
	"github.com/spordikava/ingest/internal/domain/venue"
	"github.com/spordikava/ingest/internal/infrastructure/repository/memory"
)

func TestLoadResolver(t *testing.T) {
	t.Parallel()

	teams := memory.NewTeamRepository(
		[]team.Team{{ID: 1, Code: "KALEV", Name: "BC Kalev/Cramo"}},
		[]team.Alias{{ID: 1, TeamID: 1, Text: "Kalev/Cramo Tallinn"}},
	)
	venues := memory.NewVenueRepository(
		[]venue.Venue{{ID: 5, Name: "Tondiraba Jäähall", City: "Tallinn"}},
		[]venue.Alias{{ID: 1, VenueID: 5, Text: "Tondiraba"}},
	)
	leagues := memory.NewLeagueNodeRepository(
		[]leaguetree.Node{
			{ID: 10, SportID: 1, Name: "Meistriliiga"},
			{ID: 20, SportID: 2, Name: "Unibet Hokiliiga"},
		},
		[]leaguetree.Alias{{ID: 1, NodeID: 20, Text: "UNIBET HOKILIIGA"}},
	)

	resolver, err := LoadResolver(context.Background(), teams, venues, leagues,
		map[string]int64{"basketball": 1, "hockey": 2})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resolver.TeamID("kalev"))
	assert.Equal(t, int64(1), resolver.TeamID("Kalev/Cramo  Tallinn"))
	assert.Equal(t, int64(5), resolver.VenueID("tondiraba"))
	assert.Equal(t, int64(10), resolver.LeagueNodeID("MEISTRILIIGA"))
	assert.Equal(t, int64(20), resolver.LeagueNodeID("unibet hokiliiga"))
	assert.Zero(t, resolver.TeamID("FC Flora"))
}
