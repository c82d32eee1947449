package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/infrastructure/repository/memory"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
)

func TestRunAllServiceRunsEverySource(t *testing.T) {
	t.Parallel()

	writer := memory.NewEventWriter()
	ingest := newTestIngest(writer, nil, IngestOptions{ReferenceYear: 2025})
	svc := NewRunAllService(ingest, 3, logging.NewNop())

	adapters := []scraper.Adapter{
		&stubAdapter{source: "basketee", sport: event.SportBasketball,
			rows: []event.Raw{basketballRow("BC Kalev/Cramo", "Tartu Ülikool")}},
		&stubAdapter{source: "ehs_hockey_scraper", sport: event.SportHockey,
			rows: []event.Raw{{
				Sport: event.SportHockey, Source: "ehs_hockey_scraper",
				DateText: "02.11.2025", TimeText: "17:30",
				HomeText: "HC Panter", AwayText: "Tartu Välk 494",
				ExternalID: "4711",
			}}},
	}

	results, err := svc.Run(context.Background(), adapters)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results come back sorted by source regardless of completion order.
	assert.Equal(t, "basketee", results[0].Source)
	assert.Equal(t, "ehs_hockey_scraper", results[1].Source)
	assert.Equal(t, 1, results[0].Summary.Inserted)
	assert.Equal(t, 1, results[1].Summary.Inserted)
	assert.Equal(t, 2, writer.Len())
}

func TestRunAllServiceIsolatesFailures(t *testing.T) {
	t.Parallel()

	writer := memory.NewEventWriter()
	ingest := newTestIngest(writer, nil, IngestOptions{ReferenceYear: 2025})
	svc := NewRunAllService(ingest, 2, logging.NewNop())

	results, err := svc.Run(context.Background(), []scraper.Adapter{
		&stubAdapter{source: "basketee", sport: event.SportBasketball, err: errors.New("status 503")},
		&stubAdapter{source: "jalgpallee", sport: event.SportFootball,
			rows: []event.Raw{{
				Sport: event.SportFootball, Source: "jalgpallee",
				DateText: "21.06.2025", TimeText: "19:00",
				HomeText: "FC Flora", AwayText: "FCI Levadia",
				ExternalID: "jalgpall:match_info:123",
			}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 sources failed")
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, results[1].Summary.Inserted)
	assert.Equal(t, 1, writer.Len(), "healthy source still persisted")
}

func TestRunAllServiceRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewRunAllService(newTestIngest(memory.NewEventWriter(), nil, IngestOptions{}), 2, logging.NewNop())

	_, err := svc.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
