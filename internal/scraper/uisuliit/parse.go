package uisuliit

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/identity"
	"github.com/spordikava/ingest/internal/normalize"
)

var digitRegex = regexp.MustCompile(`\d`)

type calendarRow struct {
	DateText   string `json:"dateText"`
	Title      string `json:"title"`
	DetailLink string `json:"detailLink,omitempty"`
	Venue      string `json:"rawVenue,omitempty"`
	Organizer  string `json:"organizer,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
}

// parseCalendar reads the first calendar table. Layout: date range, title
// (often linked to the competition page), venue, organizer, subtitle. Rows
// whose date cell carries no digits are section headers and are dropped.
func parseCalendar(doc *goquery.Document, pageURL string) ([]event.Raw, int) {
	table := doc.Find(".table-holder table").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}

	var out []event.Raw
	var skipped int

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return
		}

		dateText := normalize.Whitespace(cells.Eq(0).Text())
		if !digitRegex.MatchString(dateText) {
			return
		}

		titleCell := cells.Eq(1)
		titleLink := titleCell.Find("a").First()
		title := normalize.Whitespace(titleCell.Text())
		detailLink := ""
		if titleLink.Length() > 0 {
			title = normalize.Whitespace(titleLink.Text())
			detailLink = resolveLink(titleLink.AttrOr("href", ""), pageURL)
		}

		row := calendarRow{
			DateText:   dateText,
			Title:      title,
			DetailLink: detailLink,
			Venue:      normalize.Whitespace(cells.Eq(2).Text()),
			Organizer:  cellText(cells, 3),
			Subtitle:   cellText(cells, 4),
		}

		if r := normalize.ParseDateRange(dateText); r.Start == "" {
			skipped++
			return
		}

		payload, _ := sonic.Marshal(row)

		out = append(out, event.Raw{
			Sport:          event.SportSkating,
			Source:         sourceName,
			NativeID:       rowNativeID(row),
			ExternalID:     identity.Hash(rowNativeID(row)),
			DateText:       dateText,
			TitleText:      title,
			SubtitleText:   row.Subtitle,
			VenueText:      row.Venue,
			OrganizerText:  row.Organizer,
			LeagueText:     leagueName,
			MatchURL:       detailLink,
			FederationName: federationName,
			FederationLink: federationLink,
			Payload:        payload,
		})
	})

	return out, skipped
}

func cellText(cells *goquery.Selection, i int) string {
	if i >= cells.Length() {
		return ""
	}
	return normalize.Whitespace(cells.Eq(i).Text())
}

// rowNativeID keys a competition by its detail link when published; the
// content fallback keeps title-only rows stable across reruns.
func rowNativeID(row calendarRow) string {
	if row.DetailLink != "" {
		return sourceName + "|" + row.DetailLink
	}
	return sourceName + "|" + strings.Join([]string{row.DateText, row.Title, row.Venue, row.Organizer, row.Subtitle}, "|")
}
