// Package normalize turns ragged source text into canonical strings, dates
// and clock times. Dates are always emitted as YYYY-MM-DD; times stay naive
// local clock values exactly as published.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Whitespace collapses all whitespace runs, including non-breaking spaces,
// to single spaces and trims the result.
func Whitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// DateTime is the outcome of ParseDateTime. A zero value means the text
// matched no known grammar and the record must be skipped.
type DateTime struct {
	Date string
	Time string
	// YearInferred is set when the source omitted the year and the supplied
	// reference year was applied. Callers are expected to log this.
	YearInferred bool
}

var (
	dateTimeRegex     = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4}).*?(\d{2}:\d{2})`)
	dateOnlyRegex     = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	dayMonthTimeRegex = regexp.MustCompile(`(\d{2})\.(\d{2}).*?(\d{2}:\d{2})`)
)

// ParseDateTime recognizes, in priority order: "DD.MM.YYYY, HH:MM",
// "DD.MM.YYYY" alone, and "DD.MM HH:MM" with the year taken from refYear.
// Non-matching text yields the zero DateTime.
func ParseDateTime(s string, refYear int) DateTime {
	t := Whitespace(s)

	if m := dateTimeRegex.FindStringSubmatch(t); m != nil {
		date := isoDate(m[3], m[2], m[1])
		if date == "" {
			return DateTime{}
		}
		return DateTime{Date: date, Time: m[4]}
	}

	if m := dateOnlyRegex.FindStringSubmatch(t); m != nil {
		date := isoDate(m[3], m[2], m[1])
		if date == "" {
			return DateTime{}
		}
		return DateTime{Date: date}
	}

	if m := dayMonthTimeRegex.FindStringSubmatch(t); m != nil {
		date := isoDate(strconv.Itoa(refYear), m[2], m[1])
		if date == "" {
			return DateTime{}
		}
		return DateTime{Date: date, Time: m[3], YearInferred: true}
	}

	return DateTime{}
}

// DateRange is a single date or a hyphen-separated span; End is empty for
// single dates.
type DateRange struct {
	Start string
	End   string
}

var (
	rangeSingleRegex    = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	rangeFullRegex      = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.\s*-\s*(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	rangeDayOnlyRegex   = regexp.MustCompile(`^(\d{1,2})\.?\s*-\s*(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	rangeCrossIntoRegex = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\s*-\s*(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
)

// ParseDateRange recognizes "DD.MM.YYYY", "DD.MM.-DD.MM.YYYY",
// "DD.-DD.MM.YYYY" / "DD-DD.MM.YYYY" and "DD.MM-DD.MM.YYYY". The year always
// comes from the tail of the expression. Non-matching text yields the zero
// DateRange.
func ParseDateRange(s string) DateRange {
	t := Whitespace(s)

	if m := rangeSingleRegex.FindStringSubmatch(t); m != nil {
		return DateRange{Start: isoDate(m[3], m[2], m[1])}
	}
	if m := rangeFullRegex.FindStringSubmatch(t); m != nil {
		return DateRange{
			Start: isoDate(m[5], m[2], m[1]),
			End:   isoDate(m[5], m[4], m[3]),
		}
	}
	if m := rangeDayOnlyRegex.FindStringSubmatch(t); m != nil {
		return DateRange{
			Start: isoDate(m[4], m[3], m[1]),
			End:   isoDate(m[4], m[3], m[2]),
		}
	}
	if m := rangeCrossIntoRegex.FindStringSubmatch(t); m != nil {
		return DateRange{
			Start: isoDate(m[5], m[2], m[1]),
			End:   isoDate(m[5], m[4], m[3]),
		}
	}

	return DateRange{}
}

var clockRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Clock returns the trimmed text when it is a bare HH:MM value, else "".
func Clock(s string) string {
	t := Whitespace(s)
	if !clockRegex.MatchString(t) {
		return ""
	}
	if len(t) == 4 {
		t = "0" + t
	}
	return t
}

var (
	teamCodeSpacedRegex = regexp.MustCompile(`^(.*?)\s+([A-ZÕÄÖÜ]{2,6})$`)
	teamCodeGluedRegex  = regexp.MustCompile(`^(.*?)([A-ZÕÄÖÜ]{2,6})$`)
)

// TeamNameAndCode splits a compound team string into a long name and a
// trailing 2-6 uppercase-letter code, trying the space-separated form first
// and then the glued form ("Pärnu SadamPRN"). When neither matches, the whole
// string is the name and the code is empty.
func TeamNameAndCode(s string) (name, code string) {
	text := Whitespace(s)
	if text == "" {
		return "", ""
	}

	if m := teamCodeSpacedRegex.FindStringSubmatch(text); m != nil {
		if n := Whitespace(m[1]); len(n) >= 3 {
			return n, m[2]
		}
	}
	if m := teamCodeGluedRegex.FindStringSubmatch(text); m != nil {
		if n := Whitespace(m[1]); len(n) >= 3 {
			return n, m[2]
		}
	}

	return text, ""
}

// isoDate renders YYYY-MM-DD after checking the components form a real
// calendar date; "" on anything time.Date would silently roll over.
func isoDate(year, month, day string) string {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return ""
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
