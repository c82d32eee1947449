package venue

import "context"

// Repository exposes venue reference reads.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	ListAliases(ctx context.Context) ([]Alias, error)
}
