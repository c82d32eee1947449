package leaguetree

// Node types mirror how federations structure their competitions.
const (
	NodeTypeGroup  = "group"
	NodeTypeLeague = "league"
)

// Node is one competition/division in a per-sport hierarchy. ParentID of
// zero marks a root. IsDefault seeds the serving-side filter state; the
// pipeline owns the data but never interprets the flag.
type Node struct {
	ID        int64
	SportID   int64
	ParentID  int64
	NodeType  string
	Name      string
	SortOrder int
	IsDefault bool
}

// Alias maps one raw league spelling onto a node.
type Alias struct {
	ID     int64
	NodeID int64
	Text   string
}
