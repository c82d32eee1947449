package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/domain/leaguetree"
	qb "github.com/spordikava/ingest/internal/platform/querybuilder"
)

type LeagueNodeRepository struct {
	db *sqlx.DB
}

func NewLeagueNodeRepository(db *sqlx.DB) *LeagueNodeRepository {
	return &LeagueNodeRepository{db: db}
}

type leagueNodeTableModel struct {
	ID        int64         `db:"id"`
	SportID   int64         `db:"sport_id"`
	ParentID  sql.NullInt64 `db:"parent_id"`
	NodeType  string        `db:"node_type"`
	Name      string        `db:"name"`
	SortOrder int           `db:"sort_order"`
	IsDefault bool          `db:"is_default"`
}

type leagueAliasTableModel struct {
	ID     int64  `db:"id"`
	NodeID int64  `db:"node_id"`
	Text   string `db:"alias"`
}

func (r *LeagueNodeRepository) ListBySport(ctx context.Context, sportID int64) ([]leaguetree.Node, error) {
	query, args, err := qb.Select("id", "sport_id", "parent_id", "node_type", "name", "sort_order", "is_default").
		From("league_nodes").
		Where(
			qb.Eq("sport_id", sportID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("sort_order", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league nodes query: %w", err)
	}

	var rows []leagueNodeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league nodes sport_id=%d: %w", sportID, err)
	}

	out := make([]leaguetree.Node, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguetree.Node{
			ID:        row.ID,
			SportID:   row.SportID,
			ParentID:  nullInt64Value(row.ParentID),
			NodeType:  row.NodeType,
			Name:      row.Name,
			SortOrder: row.SortOrder,
			IsDefault: row.IsDefault,
		})
	}

	return out, nil
}

func (r *LeagueNodeRepository) ListAliasesBySport(ctx context.Context, sportID int64) ([]leaguetree.Alias, error) {
	query, args, err := qb.Select("la.id", "la.node_id", "la.alias").
		From("league_aliases la JOIN league_nodes ln ON ln.id = la.node_id").
		Where(qb.Eq("ln.sport_id", sportID)).
		OrderBy("la.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league aliases query: %w", err)
	}

	var rows []leagueAliasTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league aliases sport_id=%d: %w", sportID, err)
	}

	out := make([]leaguetree.Alias, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguetree.Alias{ID: row.ID, NodeID: row.NodeID, Text: row.Text})
	}

	return out, nil
}
