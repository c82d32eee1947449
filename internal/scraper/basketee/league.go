package basketee

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/spordikava/ingest/internal/normalize"
)

// LeagueInferrer names the competition a schedule table belongs to. The
// markup carries no stable league attribute, so the default implementation
// has to guess from surrounding headings; keeping it behind an interface
// lets tests pin the guesswork down and gives a seam for per-site overrides.
type LeagueInferrer interface {
	Infer(table *goquery.Selection) string
}

const maxAncestorHops = 10

var leagueWordRegex = regexp.MustCompile(`(?i)(liiga|meistriliiga|karikavõistl|koondis|eesti|läti|optibet|naiste|meeste)`)

type ancestorInferrer struct{}

// Infer walks up from the table looking for a heading that reads like a
// competition name, then falls back to the nearest preceding heading.
func (ancestorInferrer) Infer(table *goquery.Selection) string {
	cur := table
	for i := 0; i < maxAncestorHops; i++ {
		cur = cur.Parent()
		if cur.Length() == 0 {
			break
		}

		if h := normalize.Whitespace(cur.Find("h1,h2,h3,h4,strong").First().Text()); usable(h) {
			return h
		}

		titleish := normalize.Whitespace(
			cur.Find("[class*='title'],[class*='header'],[class*='league'],[class*='competition']").First().Text(),
		)
		if usable(titleish) {
			return titleish
		}
	}

	if prev := normalize.Whitespace(table.PrevAllFiltered("h1,h2,h3,h4,strong").First().Text()); usable(prev) {
		return prev
	}

	return ""
}

// usable rejects boilerplate and script fragments that ancestor containers
// tend to surface ("Ajakava ja tulemused", inline JS, cookie banners).
func usable(text string) bool {
	if text == "" {
		return false
	}
	if len(text) < 4 || len(text) > 140 {
		return false
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "ajakava") {
		return false
	}
	if strings.Contains(text, "var ") || strings.Contains(text, "{") || strings.Contains(text, ";") {
		return false
	}
	return leagueWordRegex.MatchString(text)
}
