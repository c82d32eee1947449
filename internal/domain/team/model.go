package team

// Team is reference data curated by the administrative collaborator.
// The pipeline only reads it.
type Team struct {
	ID   int64
	Code string
	Name string
}

// Alias maps one raw spelling onto a team. Matching is exact after
// whitespace normalization and case folding; there is no fuzzy lookup.
type Alias struct {
	ID     int64
	TeamID int64
	Text   string
}
