package jalgpall

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/spordikava/ingest/internal/domain/event"
	"github.com/spordikava/ingest/internal/normalize"
)

var (
	timeRegex      = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	matchInfoRegex = regexp.MustCompile(`match_info/(\d+)`)
	koondisRegex   = regexp.MustCompile(`matchinfo/match/(\d+)`)
)

// parseDay extracts one calendar day's events. Each competition renders as
// a block with its own head (league link + round tag) and event list.
func parseDay(doc *goquery.Document, dateStr, baseURL string) []event.Raw {
	var out []event.Raw

	doc.Find(".calendar-events .block.block-01").Each(func(_ int, block *goquery.Selection) {
		head := block.Find(".head p a").First()
		league := normalize.Whitespace(head.Text())
		leagueURL := absURL(head.AttrOr("href", ""), baseURL)
		round := normalize.Whitespace(block.Find(".head .tag").First().Text())

		block.Find(".events-list .event-single").Each(func(_ int, ev *goquery.Selection) {
			raw, ok := parseEvent(ev, dateStr, league, leagueURL, round, baseURL)
			if !ok {
				return
			}
			out = append(out, raw)
		})
	})

	return out
}

func parseEvent(ev *goquery.Selection, dateStr, league, leagueURL, round, baseURL string) (event.Raw, bool) {
	timeText, venue, venueURL := timeAndVenue(ev, baseURL)

	teams := ev.Find(".teams .team")
	home := teamName(teams.Eq(0))
	away := teamName(teams.Eq(1))
	if home == "" && away == "" {
		return event.Raw{}, false
	}

	matchURL := absURL(ev.Find(".actions a.info").AttrOr("href", ""), baseURL)
	ticketURL := absURL(ev.Find(".actions a.ticket").AttrOr("href", ""), baseURL)

	federationLink := leagueURL
	if federationLink == "" {
		federationLink = matchURL
	}

	id := nativeID(matchURL, dateStr, timeText, league, home, away)

	return event.Raw{
		Sport:          event.SportFootball,
		Source:         sourceName,
		NativeID:       id,
		ExternalID:     id,
		DateText:       dateStr,
		TimeText:       timeText,
		HomeText:       home,
		AwayText:       away,
		VenueText:      venue,
		LeagueText:     league,
		RoundText:      round,
		TitleText:      home + " vs " + away,
		MatchURL:       matchURL,
		TicketURL:      ticketURL,
		FederationName: federationName,
		FederationLink: federationLink,
		Payload:        []byte(venueURL), // venue detail link, kept for later geo enrichment
	}, true
}

// timeAndVenue reads the two info titles. When a kickoff time is published
// it comes first and the venue second; otherwise the venue is first.
func timeAndVenue(ev *goquery.Selection, baseURL string) (timeText, venue, venueURL string) {
	titles := ev.Find(".info p.title")
	first := titles.Eq(0)
	second := titles.Eq(1)

	firstText := normalize.Whitespace(first.Text())

	venueFrom := first
	if timeRegex.MatchString(firstText) {
		timeText = firstText
		venueFrom = second
	}

	link := venueFrom.Find("a").First()
	venue = normalize.Whitespace(link.Text())
	if venue == "" {
		venue = normalize.Whitespace(venueFrom.Text())
	}
	venueURL = absURL(link.AttrOr("href", ""), baseURL)

	if venue == "" {
		venue = normalize.Whitespace(ev.AttrOr("data-field", ""))
	}

	return timeText, venue, venueURL
}

func teamName(team *goquery.Selection) string {
	if a := team.Find("p a").First(); a.Length() > 0 {
		return normalize.Whitespace(a.Text())
	}
	return normalize.Whitespace(team.Find("p").First().Text())
}

// nativeID prefers the numeric match id embedded in the match info URL; the
// composite fallback keeps days without detail links idempotent.
func nativeID(matchURL, dateStr, timeText, league, home, away string) string {
	if matchURL != "" {
		if m := matchInfoRegex.FindStringSubmatch(matchURL); m != nil {
			return "jalgpall:match_info:" + m[1]
		}
		if m := koondisRegex.FindStringSubmatch(matchURL); m != nil {
			return "jalgpall:koondis_match:" + m[1]
		}
		return "jalgpall:url:" + matchURL
	}

	return "jalgpall:fallback:" + strings.Join([]string{dateStr, timeText, league, home, away}, "|")
}

func absURL(href, baseURL string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return baseURL + href
}
