package hockey

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

const scheduleJSON = `{
  "data": {
    "rows": [
      {
        "id": 987654,
        "scheduledDate": {"value": "14.12.2025"},
        "scheduledTime": "18:30",
        "homeTeamLongName": "HC Panter",
        "awayTeamLongName": "Tartu Välk 494",
        "location": {"longname": "Tondiraba Jäähall"}
      },
      {
        "id": 0,
        "scheduledDate": {"value": ""},
        "homeTeamLongName": "",
        "awayTeamLongName": ""
      }
    ]
  }
}`

func TestRunEmitsRowsPerDivision(t *testing.T) {
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQueries = append(gotQueries, r.URL.RawQuery)
		assert.Equal(t, "/Schedule", r.URL.Path)
		assert.Equal(t, "https://ehs.eestihoki.ee/", r.Header.Get("Referer"))
		_, _ = w.Write([]byte(scheduleJSON))
	}))
	defer srv.Close()

	fetcher := scraper.NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())
	adapter := New(srv.URL, "secret-key", "https://ehs.eestihoki.ee/",
		map[string]int64{"UNIBET HOKILIIGA": 18975}, fetcher, logging.NewNop())

	var emitted []event.Raw
	err := adapter.Run(context.Background(), func(raw event.Raw) error {
		emitted = append(emitted, raw)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, emitted, 1)
	raw := emitted[0]
	assert.Equal(t, event.SportHockey, raw.Sport)
	assert.Equal(t, "ehs_hockey_scraper", raw.Source)
	assert.Equal(t, "987654", raw.NativeID)
	assert.Equal(t, "987654", raw.ExternalID)
	assert.Equal(t, "14.12.2025", raw.DateText)
	assert.Equal(t, "18:30", raw.TimeText)
	assert.Equal(t, "HC Panter", raw.HomeText)
	assert.Equal(t, "Tartu Välk 494", raw.AwayText)
	assert.Equal(t, "Tondiraba Jäähall", raw.VenueText)
	assert.Equal(t, "UNIBET HOKILIIGA", raw.LeagueText)
	assert.Contains(t, string(raw.Payload), "Tondiraba")

	require.Len(t, gotQueries, 1)
	assert.Contains(t, gotQueries[0], "apiKey=secret-key")
	assert.Contains(t, gotQueries[0], "divisionId=18975")
	assert.Contains(t, gotQueries[0], "referer=ehs.eestihoki.ee")
}

func TestRunAbortsOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	fetcher := scraper.NewFetcher(5*time.Second, "test-agent/1.0", logging.NewNop())
	adapter := New(srv.URL, "secret-key", "https://ehs.eestihoki.ee/",
		map[string]int64{"NAISTE LIIGA": 18979}, fetcher, logging.NewNop())

	err := adapter.Run(context.Background(), func(event.Raw) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, scraper.ErrBadStatus)
}

func TestMapRowRejectsIncompleteGames(t *testing.T) {
	_, ok := mapRow(gameRow{ID: 1}, "L", nil, "link")
	assert.False(t, ok)
}
