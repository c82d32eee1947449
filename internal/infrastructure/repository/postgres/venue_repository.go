package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/domain/venue"
	qb "github.com/spordikava/ingest/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueTableModel struct {
	ID   int64           `db:"id"`
	Name string          `db:"name"`
	City sql.NullString  `db:"city"`
	Lat  sql.NullFloat64 `db:"lat"`
	Lon  sql.NullFloat64 `db:"lon"`
}

type venueAliasTableModel struct {
	ID      int64  `db:"id"`
	VenueID int64  `db:"venue_id"`
	Text    string `db:"alias"`
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("id", "name", "city", "lat", "lon").From("venues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Venue{
			ID:   row.ID,
			Name: row.Name,
			City: nullStringValue(row.City),
			Lat:  row.Lat.Float64,
			Lon:  row.Lon.Float64,
		})
	}

	return out, nil
}

func (r *VenueRepository) ListAliases(ctx context.Context) ([]venue.Alias, error) {
	query, args, err := qb.Select("id", "venue_id", "alias").From("venue_aliases").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venue aliases query: %w", err)
	}

	var rows []venueAliasTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venue aliases: %w", err)
	}

	out := make([]venue.Alias, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Alias{ID: row.ID, VenueID: row.VenueID, Text: row.Text})
	}

	return out, nil
}
