package event

// Sport tags used across raw stores and the canonical events relation.
const (
	SportBasketball = "basketball"
	SportHockey     = "hockey"
	SportFootball   = "football"
	SportSkating    = "skating"
)

// Raw is one record as an adapter extracted it, before normalization.
// Text fields carry the source markup verbatim; Payload keeps the full
// original payload for forensic replay where the source is JSON.
type Raw struct {
	Sport          string
	Source         string
	DateText       string
	TimeText       string
	HomeText       string
	HomeCodeText   string
	AwayText       string
	AwayCodeText   string
	VenueText      string
	CityText       string
	LeagueText     string
	RoundText      string
	TitleText      string
	SubtitleText   string
	OrganizerText  string
	BroadcastText  string
	// NativeID is the source's own identifier for the record, if any.
	NativeID string
	// ExternalID, when set by the adapter, is used verbatim as the identity
	// key; otherwise the pipeline derives one from the record's content.
	ExternalID string
	MatchURL       string
	TicketURL      string
	FederationName string
	FederationLink string
	Payload        []byte
}

// Canonical is the persisted shape of one event. The identity key is
// (Source, ExternalID); everything else is refreshable by its source on
// re-ingest except the resolved ids, which operators may curate by hand.
type Canonical struct {
	Sport          string `validate:"required"`
	Source         string `validate:"required"`
	ExternalID     string `validate:"required"`
	League         string
	LeagueNodeID   int64
	Round          string
	Date           string `validate:"required,datetime=2006-01-02"`
	DateEnd        string `validate:"omitempty,datetime=2006-01-02"`
	Time           string `validate:"omitempty,datetime=15:04"`
	Title          string
	Subtitle       string
	HomeName       string
	HomeCode       string
	AwayName       string
	AwayCode       string
	HomeTeamID     int64
	AwayTeamID     int64
	Venue          string
	VenueID        int64
	City           string
	Broadcast      string
	Organizer      string
	FederationName string
	FederationLink string
	TicketLink     string
	MatchLink      string
	Payload        []byte
}

// Outcome reports what an upsert did to the datastore.
type Outcome int

const (
	OutcomeInserted Outcome = iota + 1
	OutcomeUpdated
	// OutcomeDuplicate means a different uniqueness rule than the identity
	// key rejected the row (legacy dedup constraints); the record is skipped,
	// never treated as an error.
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}
