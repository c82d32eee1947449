// Package app wires configuration, the database handle and the repositories
// into ready-to-run services for the scrape binaries.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/config"
	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/domain/leaguetree"
	"github.com/spordikava/ingest/internal/domain/team"
	"github.com/spordikava/ingest/internal/domain/venue"
	"github.com/spordikava/ingest/internal/identity"
	"github.com/spordikava/ingest/internal/infrastructure/repository/postgres"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/usecase"
)

// LoadResolver builds the per-run alias index from the reference tables:
// teams and venues with their aliases, plus the league hierarchy of every
// configured sport.
func LoadResolver(
	ctx context.Context,
	teams team.Repository,
	venues venue.Repository,
	leagues leaguetree.Repository,
	sportIDs map[string]int64,
) (*identity.Resolver, error) {
	resolver := identity.NewResolver()

	teamRows, err := teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	for _, t := range teamRows {
		resolver.AddTeam(t)
	}
	teamAliases, err := teams.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team aliases: %w", err)
	}
	for _, a := range teamAliases {
		resolver.AddTeamAlias(a)
	}

	venueRows, err := venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	for _, v := range venueRows {
		resolver.AddVenue(v)
	}
	venueAliases, err := venues.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venue aliases: %w", err)
	}
	for _, a := range venueAliases {
		resolver.AddVenueAlias(a)
	}

	for _, sportID := range sortedIDs(sportIDs) {
		nodes, err := leagues.ListBySport(ctx, sportID)
		if err != nil {
			return nil, fmt.Errorf("load league nodes sport_id=%d: %w", sportID, err)
		}
		for _, n := range nodes {
			resolver.AddLeagueNode(n)
		}
		aliases, err := leagues.ListAliasesBySport(ctx, sportID)
		if err != nil {
			return nil, fmt.Errorf("load league aliases sport_id=%d: %w", sportID, err)
		}
		for _, a := range aliases {
			resolver.AddLeagueAlias(a)
		}
	}

	return resolver, nil
}

// BuildIngest assembles the full persistence side of the pipeline: alias
// resolver, canonical event writer and the four per-sport raw mirrors.
func BuildIngest(ctx context.Context, db *sqlx.DB, cfg config.Config, logger *logging.Logger) (*usecase.IngestService, error) {
	resolver, err := LoadResolver(
		ctx,
		postgres.NewTeamRepository(db),
		postgres.NewVenueRepository(db),
		postgres.NewLeagueNodeRepository(db),
		cfg.SportIDs,
	)
	if err != nil {
		return nil, err
	}

	rawWriters := make(map[string]event.RawWriter, 4)
	for _, sport := range []string{
		event.SportBasketball,
		event.SportHockey,
		event.SportFootball,
		event.SportSkating,
	} {
		repo, err := postgres.NewRawEventRepository(db, sport)
		if err != nil {
			return nil, fmt.Errorf("build raw store %s: %w", sport, err)
		}
		rawWriters[sport] = repo
	}

	opts := usecase.IngestOptions{
		ReferenceYear:  cfg.ReferenceYear,
		RequireTeamIDs: cfg.RequireTeamIDs,
	}
	return usecase.NewIngestService(postgres.NewEventRepository(db), rawWriters, resolver, opts, logger), nil
}

func sortedIDs(m map[string]int64) []int64 {
	out := make([]int64, 0, len(m))
	for _, id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
