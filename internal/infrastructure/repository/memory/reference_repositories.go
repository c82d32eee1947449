package memory

import (
	"context"
	"sync"

	"github.com/spordikava/ingest/internal/domain/leaguetree"
	"github.com/spordikava/ingest/internal/domain/team"
	"github.com/spordikava/ingest/internal/domain/venue"
)

type TeamRepository struct {
	mu      sync.RWMutex
	teams   []team.Team
	aliases []team.Alias
}

func NewTeamRepository(teams []team.Team, aliases []team.Alias) *TeamRepository {
	return &TeamRepository{teams: teams, aliases: aliases}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teams...), nil
}

func (r *TeamRepository) ListAliases(_ context.Context) ([]team.Alias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Alias(nil), r.aliases...), nil
}

type VenueRepository struct {
	mu      sync.RWMutex
	venues  []venue.Venue
	aliases []venue.Alias
}

func NewVenueRepository(venues []venue.Venue, aliases []venue.Alias) *VenueRepository {
	return &VenueRepository{venues: venues, aliases: aliases}
}

func (r *VenueRepository) List(_ context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]venue.Venue(nil), r.venues...), nil
}

func (r *VenueRepository) ListAliases(_ context.Context) ([]venue.Alias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]venue.Alias(nil), r.aliases...), nil
}

type LeagueNodeRepository struct {
	mu      sync.RWMutex
	nodes   []leaguetree.Node
	aliases []leaguetree.Alias
}

func NewLeagueNodeRepository(nodes []leaguetree.Node, aliases []leaguetree.Alias) *LeagueNodeRepository {
	return &LeagueNodeRepository{nodes: nodes, aliases: aliases}
}

func (r *LeagueNodeRepository) ListBySport(_ context.Context, sportID int64) ([]leaguetree.Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaguetree.Node, 0, len(r.nodes))
	for _, node := range r.nodes {
		if node.SportID == sportID {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *LeagueNodeRepository) ListAliasesBySport(_ context.Context, sportID int64) ([]leaguetree.Alias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodeSport := make(map[int64]int64, len(r.nodes))
	for _, node := range r.nodes {
		nodeSport[node.ID] = node.SportID
	}

	out := make([]leaguetree.Alias, 0, len(r.aliases))
	for _, alias := range r.aliases {
		if nodeSport[alias.NodeID] == sportID {
			out = append(out, alias)
		}
	}
	return out, nil
}
