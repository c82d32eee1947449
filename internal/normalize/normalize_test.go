package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitespace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  Tallinn,\tTalTech  Spordihoone ", "Tallinn, TalTech Spordihoone"},
		{"Kalev / Cramo", "Kalev / Cramo"},
		{"\n\n", ""},
		{"juba puhas", "juba puhas"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Whitespace(tc.in), "input %q", tc.in)
	}
}

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want DateTime
	}{
		{"date with time", "T 09.12.2025, 20:00", DateTime{Date: "2025-12-09", Time: "20:00"}},
		{"padded whitespace", "  09.12.2025 ,  20:00 ", DateTime{Date: "2025-12-09", Time: "20:00"}},
		{"date only", "24.08.2026", DateTime{Date: "2026-08-24"}},
		{"day month time, year inferred", "05.03 19:30", DateTime{Date: "2026-03-05", Time: "19:30", YearInferred: true}},
		{"impossible date", "32.13.2025, 20:00", DateTime{}},
		{"garbage", "Ajakava ja tulemused", DateTime{}},
		{"empty", "", DateTime{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateTime(tc.in, 2026))
		})
	}
}

func TestParseDateTimeRoundTripsPadding(t *testing.T) {
	t.Parallel()

	plain := ParseDateTime("09.12.2025, 20:00", 2026)
	padded := ParseDateTime("  09.12.2025,\t20:00  ", 2026)
	assert.Equal(t, plain, padded)
	assert.Equal(t, "2025-12-09", plain.Date)
}

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want DateRange
	}{
		{"single", "14.02.2026", DateRange{Start: "2026-02-14"}},
		{"full range across months", "31.01.-01.02.2026", DateRange{Start: "2026-01-31", End: "2026-02-01"}},
		{"day-only range", "06.-08.03.2026", DateRange{Start: "2026-03-06", End: "2026-03-08"}},
		{"day-only range without dot", "06-08.03.2026", DateRange{Start: "2026-03-06", End: "2026-03-08"}},
		{"month crossing without trailing dot", "28.02-01.03.2026", DateRange{Start: "2026-02-28", End: "2026-03-01"}},
		{"headerish text", "Kuupäev", DateRange{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateRange(tc.in))
		})
	}
}

func TestClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "15:00", Clock(" 15:00 "))
	assert.Equal(t, "09:05", Clock("9:05"))
	assert.Equal(t, "", Clock("Sõle Spordikeskus"))
	assert.Equal(t, "", Clock(""))
}

func TestTeamNameAndCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		wantName string
		wantCode string
	}{
		{"BC Kalev / Cramo KAL", "BC Kalev / Cramo", "KAL"},
		{"Pärnu SadamPRN", "Pärnu Sadam", "PRN"},
		{"Tartu Ülikool ÜLIK", "Tartu Ülikool", "ÜLIK"},
		{"TalTech", "TalTech", ""},
		{"AB", "AB", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		name, code := TeamNameAndCode(tc.in)
		assert.Equal(t, tc.wantName, name, "input %q", tc.in)
		assert.Equal(t, tc.wantCode, code, "input %q", tc.in)
	}
}
