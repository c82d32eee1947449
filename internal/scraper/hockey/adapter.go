// Package hockey pulls the Estonian hockey federation's schedule from the
// hockeydata JSON API, one request per configured division.
package hockey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/normalize"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

const (
	sourceName     = "ehs_hockey_scraper"
	federationName = "Eesti Hoki"
)

type Adapter struct {
	baseURL   string
	apiKey    string
	referer   string
	divisions map[string]int64
	fetcher   *scraper.Fetcher
	logger    *logging.Logger
}

func New(baseURL, apiKey, referer string, divisions map[string]int64, fetcher *scraper.Fetcher, logger *logging.Logger) *Adapter {
	return &Adapter{
		baseURL:   baseURL,
		apiKey:    apiKey,
		referer:   referer,
		divisions: divisions,
		fetcher:   fetcher,
		logger:    logger,
	}
}

func (a *Adapter) Source() string { return sourceName }
func (a *Adapter) Sport() string  { return event.SportHockey }

// scheduleEnvelope mirrors the slice of the provider response the pipeline
// reads. Each game's full JSON is still retained as the raw payload.
type scheduleEnvelope struct {
	Data struct {
		Rows []json.RawMessage `json:"rows"`
	} `json:"data"`
}

type gameRow struct {
	ID            int64  `json:"id"`
	ScheduledDate struct {
		Value string `json:"value"`
	} `json:"scheduledDate"`
	ScheduledTime    string `json:"scheduledTime"`
	HomeTeamLongName string `json:"homeTeamLongName"`
	AwayTeamLongName string `json:"awayTeamLongName"`
	Location         struct {
		LongName string `json:"longname"`
	} `json:"location"`
}

func (a *Adapter) Run(ctx context.Context, emit func(event.Raw) error) error {
	// deterministic division order keeps logs and reruns comparable
	names := make([]string, 0, len(a.divisions))
	for name := range a.divisions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, league := range names {
		if err := a.runDivision(ctx, league, a.divisions[league], emit); err != nil {
			return errors.Wrapf(err, "division %q", league)
		}
	}

	return nil
}

func (a *Adapter) runDivision(ctx context.Context, league string, divisionID int64, emit func(event.Raw) error) error {
	header := http.Header{}
	header.Set("Accept", "application/json,text/plain,*/*")
	header.Set("Referer", a.referer)

	body, err := a.fetcher.Get(ctx, a.scheduleURL(divisionID), header)
	if err != nil {
		return err
	}

	var envelope scheduleEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return errors.Wrap(err, "decode schedule")
	}

	a.logger.InfoContext(ctx, "division schedule loaded",
		"source", sourceName, "league", league, "division_id", divisionID, "rows", len(envelope.Data.Rows))

	var skipped int
	for _, rowJSON := range envelope.Data.Rows {
		var row gameRow
		if err := sonic.Unmarshal(rowJSON, &row); err != nil {
			a.logger.WarnContext(ctx, "game row undecodable", "source", sourceName, "league", league, "error", err)
			skipped++
			continue
		}

		raw, ok := mapRow(row, league, rowJSON, a.referer)
		if !ok {
			skipped++
			continue
		}
		if err := emit(raw); err != nil {
			return err
		}
	}

	if skipped > 0 {
		a.logger.WarnContext(ctx, "game rows skipped", "source", sourceName, "league", league, "skipped", skipped)
	}

	return nil
}

func (a *Adapter) scheduleURL(divisionID int64) string {
	values := url.Values{}
	values.Set("apiKey", a.apiKey)
	values.Set("lang", "en")
	values.Set("referer", refererHost(a.referer))
	values.Set("divisionId", fmt.Sprintf("%d", divisionID))
	return a.baseURL + "/Schedule?" + values.Encode()
}

func refererHost(referer string) string {
	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return referer
	}
	return parsed.Host
}

// mapRow converts one decoded game into a raw event. Rows without an id,
// date, or both team names carry nothing the pipeline can key on.
func mapRow(row gameRow, league string, payload []byte, federationLink string) (event.Raw, bool) {
	home := normalize.Whitespace(row.HomeTeamLongName)
	away := normalize.Whitespace(row.AwayTeamLongName)
	date := normalize.Whitespace(row.ScheduledDate.Value)

	if row.ID <= 0 || date == "" || home == "" || away == "" {
		return event.Raw{}, false
	}

	return event.Raw{
		Sport:          event.SportHockey,
		Source:         sourceName,
		NativeID:       fmt.Sprintf("%d", row.ID),
		ExternalID:     fmt.Sprintf("%d", row.ID),
		DateText:       date,
		TimeText:       normalize.Whitespace(row.ScheduledTime),
		HomeText:       home,
		AwayText:       away,
		VenueText:      normalize.Whitespace(row.Location.LongName),
		LeagueText:     league,
		TitleText:      home + " vs " + away,
		FederationName: federationName,
		FederationLink: federationLink,
		Payload:        append([]byte(nil), payload...),
	}, true
}
