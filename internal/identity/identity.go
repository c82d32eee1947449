// Package identity computes stable external identifiers for raw events and
// resolves free-text team/venue/league spellings onto canonical entity ids.
package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/spordikava/ingest/internal/domain/leaguetree"
	"github.com/spordikava/ingest/internal/domain/team"
	"github.com/spordikava/ingest/internal/domain/venue"
	"github.com/spordikava/ingest/internal/normalize"
)

const (
	fallbackLeague   = "unknown"
	fallbackNativeID = "none"
	fallbackDate     = "nodate"
	fallbackHome     = "home"
	fallbackAway     = "away"
)

// ExternalID derives the idempotency key for an event: a sha1 hex digest over
// the normalized identity tuple joined with "|". Fields outside the tuple
// (venue, links, payload) never influence the id, so renames update in place.
// Identical inputs hash identically across runs and process restarts.
func ExternalID(league, nativeID, date, home, away string) string {
	parts := []string{
		coalesce(league, fallbackLeague),
		coalesce(nativeID, fallbackNativeID),
		coalesce(date, fallbackDate),
		coalesce(home, fallbackHome),
		coalesce(away, fallbackAway),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// Hash digests an adapter-assembled identity string. Used where a source's
// own key material (detail links, content tuples) replaces the generic tuple.
func Hash(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func coalesce(s, fallback string) string {
	if normalize.Whitespace(s) == "" {
		return fallback
	}
	return normalize.Whitespace(s)
}

// Key folds a raw spelling into the form alias lookups are keyed by:
// whitespace-normalized, case-insensitive.
func Key(s string) string {
	return strings.ToLower(normalize.Whitespace(s))
}

// Resolver is an in-memory alias index built once per run from the reference
// tables. Lookups are exact; an unmapped spelling resolves to zero, which is
// a valid, expected outcome — never an error. No fuzzy matching.
type Resolver struct {
	teams   map[string]int64
	venues  map[string]int64
	leagues map[string]int64
}

func NewResolver() *Resolver {
	return &Resolver{
		teams:   make(map[string]int64),
		venues:  make(map[string]int64),
		leagues: make(map[string]int64),
	}
}

// AddTeam indexes a team under its code and display name.
func (r *Resolver) AddTeam(t team.Team) {
	r.put(r.teams, t.Code, t.ID)
	r.put(r.teams, t.Name, t.ID)
}

func (r *Resolver) AddTeamAlias(a team.Alias) {
	r.put(r.teams, a.Text, a.TeamID)
}

func (r *Resolver) AddVenue(v venue.Venue) {
	r.put(r.venues, v.Name, v.ID)
}

func (r *Resolver) AddVenueAlias(a venue.Alias) {
	r.put(r.venues, a.Text, a.VenueID)
}

func (r *Resolver) AddLeagueNode(n leaguetree.Node) {
	r.put(r.leagues, n.Name, n.ID)
}

func (r *Resolver) AddLeagueAlias(a leaguetree.Alias) {
	r.put(r.leagues, a.Text, a.NodeID)
}

// TeamID resolves a raw team spelling; zero when unmapped.
func (r *Resolver) TeamID(raw string) int64 { return r.teams[Key(raw)] }

// VenueID resolves a raw venue spelling; zero when unmapped.
func (r *Resolver) VenueID(raw string) int64 { return r.venues[Key(raw)] }

// LeagueNodeID resolves a raw league spelling; zero when unmapped.
func (r *Resolver) LeagueNodeID(raw string) int64 { return r.leagues[Key(raw)] }

func (r *Resolver) put(index map[string]int64, text string, id int64) {
	key := Key(text)
	if key == "" || id == 0 {
		return
	}
	index[key] = id
}
