package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/domain/team"
	qb "github.com/spordikava/ingest/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type teamTableModel struct {
	ID   int64          `db:"id"`
	Code sql.NullString `db:"code"`
	Name string         `db:"name"`
}

type teamAliasTableModel struct {
	ID     int64  `db:"id"`
	TeamID int64  `db:"team_id"`
	Text   string `db:"alias"`
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "code", "name").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:   row.ID,
			Code: nullStringValue(row.Code),
			Name: row.Name,
		})
	}

	return out, nil
}

func (r *TeamRepository) ListAliases(ctx context.Context) ([]team.Alias, error) {
	query, args, err := qb.Select("id", "team_id", "alias").From("team_aliases").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team aliases query: %w", err)
	}

	var rows []teamAliasTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team aliases: %w", err)
	}

	out := make([]team.Alias, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Alias{ID: row.ID, TeamID: row.TeamID, Text: row.Text})
	}

	return out, nil
}
