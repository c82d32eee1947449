package basketee

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/normalize"
)

var (
	digitsRegex   = regexp.MustCompile(`\d+`)
	redirectRegex = regexp.MustCompile(`doRedirectGame\('([^']+)'\)`)
)

// parsePage extracts raw events from every schedule table on the page.
// Rows without both team names and a date text are counted as skipped.
func parsePage(doc *goquery.Document, inferrer LeagueInferrer, fallbackLink string) ([]event.Raw, int) {
	var out []event.Raw
	var skipped int

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		tableLeague := inferrer.Infer(table)

		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			raw, ok := parseRow(tr, tableLeague, fallbackLink)
			if !ok {
				skipped++
				return
			}
			out = append(out, raw)
		})
	})

	return out, skipped
}

func parseRow(tr *goquery.Selection, tableLeague, fallbackLink string) (event.Raw, bool) {
	gameCell := tr.Find("td.gameID")
	nativeID := normalize.Whitespace(gameCell.AttrOr("title", ""))
	if nativeID == "" {
		nativeID = digitsRegex.FindString(normalize.Whitespace(gameCell.Text()))
	}

	dateText := normalize.Whitespace(tr.Find("td.dateAndTimeTd .dateAndTime").Text())
	venue := normalize.Whitespace(tr.Find("td.dateAndTimeTd .arena").Text())

	homeName := normalize.Whitespace(tr.Find("td.homeTeam .homeTeamNameDesktop").Text())
	homeCode := normalize.Whitespace(tr.Find("td.homeTeam .homeTeamNameMobile").Text())
	awayName := normalize.Whitespace(tr.Find("td.awayTeam .visitorTeamNameDesktop").Text())
	awayCode := normalize.Whitespace(tr.Find("td.awayTeam .visitorTeamNameMobile").Text())

	// a per-row competition cell wins over the table-level guess
	league := normalize.Whitespace(tr.Find("td.competition").Text())
	if league == "" {
		league = tableLeague
	}

	broadcast := normalize.Whitespace(tr.Find("td.broadcast img").AttrOr("title", ""))

	federationLink := fallbackLink
	if m := redirectRegex.FindStringSubmatch(gameCell.AttrOr("onclick", "")); m != nil {
		federationLink = m[1]
	}

	if homeName == "" || awayName == "" || dateText == "" {
		return event.Raw{}, false
	}

	return event.Raw{
		Sport:          event.SportBasketball,
		Source:         sourceName,
		NativeID:       nativeID,
		DateText:       dateText,
		VenueText:      venue,
		HomeText:       homeName,
		HomeCodeText:   homeCode,
		AwayText:       awayName,
		AwayCodeText:   awayCode,
		LeagueText:     league,
		TitleText:      homeName + " vs " + awayName,
		BroadcastText:  broadcast,
		FederationName: federationName,
		FederationLink: federationLink,
	}, true
}
