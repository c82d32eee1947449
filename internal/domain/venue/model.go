package venue

// Venue is reference data curated by the administrative collaborator.
type Venue struct {
	ID   int64
	Name string
	City string
	Lat  float64
	Lon  float64
}

// Alias maps one raw venue spelling onto a venue.
type Alias struct {
	ID      int64
	VenueID int64
	Text    string
}
