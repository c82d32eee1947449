package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/identity"
	"github.com/spordikava/ingest/internal/normalize"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

// IngestOptions tune how raw records are normalized before persisting.
type IngestOptions struct {
	// ReferenceYear fills in dates whose source omits the year.
	ReferenceYear int
	// RequireTeamIDs skips records whose teams cannot be resolved instead of
	// persisting them with zero ids.
	RequireTeamIDs bool
}

// RunSummary is the per-adapter outcome of one ingest run. A record counts in
// exactly one of Inserted/Updated/Duplicates/Skipped/Failed; Unmapped counts
// persisted records that carry at least one unresolved team.
type RunSummary struct {
	Source     string
	Sport      string
	Fetched    int
	Inserted   int
	Updated    int
	Duplicates int
	Unmapped   int
	Skipped    int
	Failed     int
	Elapsed    time.Duration
}

// IngestService runs one source adapter end to end: pull raw rows, normalize
// text into canonical shape, resolve identities, validate, and upsert. Each
// record is processed in isolation so one bad row never poisons the run.
type IngestService struct {
	writer     event.Writer
	rawWriters map[string]event.RawWriter
	resolver   *identity.Resolver
	validate   *validator.Validate
	opts       IngestOptions
	logger     *logging.Logger
}

func NewIngestService(
	writer event.Writer,
	rawWriters map[string]event.RawWriter,
	resolver *identity.Resolver,
	opts IngestOptions,
	logger *logging.Logger,
) *IngestService {
	if opts.ReferenceYear == 0 {
		opts.ReferenceYear = time.Now().Year()
	}
	if resolver == nil {
		resolver = identity.NewResolver()
	}
	return &IngestService{
		writer:     writer,
		rawWriters: rawWriters,
		resolver:   resolver,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		opts:       opts,
		logger:     logger,
	}
}

// Run pulls the adapter's schedule and persists every usable record. The
// returned summary is valid even when err is non-nil: it covers everything
// processed before the pull aborted.
func (s *IngestService) Run(ctx context.Context, adapter scraper.Adapter) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "IngestService.Run")
	defer span.End()

	summary := RunSummary{Source: adapter.Source(), Sport: adapter.Sport()}
	started := time.Now()
	// One summary line per run, aborted runs included: it reflects exactly
	// what was durably written before the pull stopped.
	defer func() {
		summary.Elapsed = time.Since(started)
		s.logger.InfoContext(ctx, "ingest run finished",
			"source", summary.Source,
			"sport", summary.Sport,
			"fetched", summary.Fetched,
			"inserted", summary.Inserted,
			"updated", summary.Updated,
			"duplicates", summary.Duplicates,
			"unmapped", summary.Unmapped,
			"skipped", summary.Skipped,
			"failed", summary.Failed,
			"elapsed", summary.Elapsed,
		)
	}()

	switch adapter.Sport() {
	case event.SportBasketball, event.SportHockey, event.SportFootball, event.SportSkating:
	default:
		return summary, errors.Wrapf(ErrUnknownSport, "sport %q", adapter.Sport())
	}

	err := adapter.Run(ctx, func(raw event.Raw) error {
		summary.Fetched++
		s.processRecord(ctx, raw, &summary)
		return ctx.Err()
	})
	if err != nil {
		return summary, errors.Wrapf(err, "run adapter %s", adapter.Source())
	}
	return summary, nil
}

func (s *IngestService) processRecord(ctx context.Context, raw event.Raw, summary *RunSummary) {
	canonical, reason := s.canonicalize(ctx, raw)
	if reason != "" {
		summary.Skipped++
		s.logger.DebugContext(ctx, "record skipped",
			"source", raw.Source, "reason", reason, "date_text", raw.DateText, "title", raw.TitleText)
		return
	}

	unmapped := s.resolve(&canonical)
	if unmapped && s.opts.RequireTeamIDs {
		summary.Skipped++
		s.logger.WarnContext(ctx, "record skipped: unresolved team",
			"source", canonical.Source,
			"external_id", canonical.ExternalID,
			"home", canonical.HomeName,
			"away", canonical.AwayName,
		)
		return
	}

	if err := s.validate.Struct(canonical); err != nil {
		summary.Failed++
		s.logger.WarnContext(ctx, "record failed validation",
			"source", canonical.Source, "external_id", canonical.ExternalID, "error", err)
		return
	}

	if w, ok := s.rawWriters[canonical.Sport]; ok && w != nil {
		if err := w.Store(ctx, canonical); err != nil {
			// Raw mirroring is forensic, never load-bearing.
			s.logger.WarnContext(ctx, "raw store failed",
				"source", canonical.Source, "external_id", canonical.ExternalID, "error", err)
		}
	}

	outcome, err := s.writer.Upsert(ctx, canonical)
	if err != nil {
		summary.Failed++
		s.logger.ErrorContext(ctx, "upsert failed",
			"source", canonical.Source, "external_id", canonical.ExternalID, "error", err)
		return
	}
	switch outcome {
	case event.OutcomeInserted:
		summary.Inserted++
	case event.OutcomeUpdated:
		summary.Updated++
	case event.OutcomeDuplicate:
		summary.Duplicates++
		s.logger.DebugContext(ctx, "record rejected by dedup constraint",
			"source", canonical.Source, "external_id", canonical.ExternalID)
	}
	if unmapped {
		summary.Unmapped++
	}
}

// canonicalize turns one raw extraction into the persisted shape. A non-empty
// reason means the record is unusable and must be skipped.
func (s *IngestService) canonicalize(ctx context.Context, raw event.Raw) (event.Canonical, string) {
	var date, dateEnd, clock string

	// Range grammars are fully anchored, so try them before the looser
	// date-time patterns.
	if r := normalize.ParseDateRange(raw.DateText); r.Start != "" {
		date, dateEnd = r.Start, r.End
	} else if dt := normalize.ParseDateTime(raw.DateText, s.opts.ReferenceYear); dt.Date != "" {
		date, clock = dt.Date, dt.Time
		if dt.YearInferred {
			s.logger.InfoContext(ctx, "year inferred from reference year",
				"source", raw.Source, "date_text", raw.DateText, "reference_year", s.opts.ReferenceYear)
		}
	} else {
		return event.Canonical{}, "unparseable date"
	}
	if clock == "" {
		clock = normalize.Clock(raw.TimeText)
	}

	homeName, homeCode := splitTeam(raw.HomeText, raw.HomeCodeText)
	awayName, awayCode := splitTeam(raw.AwayText, raw.AwayCodeText)
	title := normalize.Whitespace(raw.TitleText)

	if homeName == "" && awayName == "" && title == "" {
		return event.Canonical{}, "no teams and no title"
	}
	if title == "" {
		title = fmt.Sprintf("%s vs %s", homeName, awayName)
	}

	league := normalize.Whitespace(raw.LeagueText)

	externalID := raw.ExternalID
	if externalID == "" {
		externalID = identity.ExternalID(league, raw.NativeID, date,
			firstNonEmpty(homeCode, homeName), firstNonEmpty(awayCode, awayName))
	}

	return event.Canonical{
		Sport:          raw.Sport,
		Source:         raw.Source,
		ExternalID:     externalID,
		League:         league,
		Round:          normalize.Whitespace(raw.RoundText),
		Date:           date,
		DateEnd:        dateEnd,
		Time:           clock,
		Title:          title,
		Subtitle:       normalize.Whitespace(raw.SubtitleText),
		HomeName:       homeName,
		HomeCode:       homeCode,
		AwayName:       awayName,
		AwayCode:       awayCode,
		Venue:          normalize.Whitespace(raw.VenueText),
		City:           normalize.Whitespace(raw.CityText),
		Broadcast:      normalize.Whitespace(raw.BroadcastText),
		Organizer:      normalize.Whitespace(raw.OrganizerText),
		FederationName: normalize.Whitespace(raw.FederationName),
		FederationLink: raw.FederationLink,
		TicketLink:     raw.TicketURL,
		MatchLink:      raw.MatchURL,
		Payload:        raw.Payload,
	}, ""
}

// resolve fills in curated ids. Misses stay zero; the return value reports
// whether a named team stayed unresolved.
func (s *IngestService) resolve(ev *event.Canonical) bool {
	ev.HomeTeamID = s.resolveTeam(ev.HomeCode, ev.HomeName)
	ev.AwayTeamID = s.resolveTeam(ev.AwayCode, ev.AwayName)
	if ev.Venue != "" {
		ev.VenueID = s.resolver.VenueID(ev.Venue)
	}
	if ev.League != "" {
		ev.LeagueNodeID = s.resolver.LeagueNodeID(ev.League)
	}

	homeUnmapped := (ev.HomeName != "" || ev.HomeCode != "") && ev.HomeTeamID == 0
	awayUnmapped := (ev.AwayName != "" || ev.AwayCode != "") && ev.AwayTeamID == 0
	return homeUnmapped || awayUnmapped
}

func (s *IngestService) resolveTeam(code, name string) int64 {
	if code != "" {
		if id := s.resolver.TeamID(code); id != 0 {
			return id
		}
	}
	if name != "" {
		return s.resolver.TeamID(name)
	}
	return 0
}

// splitTeam prefers an adapter-supplied code column over the heuristic split
// of a compound "Name CODE" string.
func splitTeam(nameText, codeText string) (name, code string) {
	if normalize.Whitespace(codeText) != "" {
		return normalize.Whitespace(nameText), normalize.Whitespace(codeText)
	}
	return normalize.TeamNameAndCode(nameText)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
