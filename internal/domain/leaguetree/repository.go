package leaguetree

import "context"

// Repository exposes league hierarchy reads per sport.
type Repository interface {
	ListBySport(ctx context.Context, sportID int64) ([]Node, error)
	ListAliasesBySport(ctx context.Context, sportID int64) ([]Alias, error)
}
