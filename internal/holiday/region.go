package holiday

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RegionProvider computes public holidays in-process from per-region rules.
// It needs no network access and is the default provider.
type RegionProvider struct {
	country     string
	subdivision string
	rules       []rule
	logger      *zap.Logger
}

// rule describes a single public holiday: a name and a function
// computing its date for a given year.
type rule struct {
	name string
	date func(year int) time.Time
}

func fixed(month time.Month, day int) func(int) time.Time {
	return func(year int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

func easterOffset(days int) func(int) time.Time {
	return func(year int) time.Time {
		return easterSunday(year).AddDate(0, 0, days)
	}
}

// easterSunday computes Easter Sunday using the Meeus/Jones/Butcher algorithm
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// bussUndBettag is the Wednesday before November 23 (Saxony only).
func bussUndBettag(year int) time.Time {
	d := time.Date(year, time.November, 22, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

var germanyNationwide = []rule{
	{"Neujahr", fixed(time.January, 1)},
	{"Karfreitag", easterOffset(-2)},
	{"Ostermontag", easterOffset(1)},
	{"Tag der Arbeit", fixed(time.May, 1)},
	{"Christi Himmelfahrt", easterOffset(39)},
	{"Pfingstmontag", easterOffset(50)},
	{"Tag der Deutschen Einheit", fixed(time.October, 3)},
	{"1. Weihnachtstag", fixed(time.December, 25)},
	{"2. Weihnachtstag", fixed(time.December, 26)},
}

// germanyStates holds the additional holidays per Bundesland (ISO 3166-2:DE codes).
var germanyStates = map[string][]rule{
	"BW": {
		{"Heilige Drei Könige", fixed(time.January, 6)},
		{"Fronleichnam", easterOffset(60)},
		{"Allerheiligen", fixed(time.November, 1)},
	},
	"BY": {
		{"Heilige Drei Könige", fixed(time.January, 6)},
		{"Fronleichnam", easterOffset(60)},
		{"Mariä Himmelfahrt", fixed(time.August, 15)},
		{"Allerheiligen", fixed(time.November, 1)},
	},
	"BE": {
		{"Internationaler Frauentag", fixed(time.March, 8)},
	},
	"BB": {
		{"Ostersonntag", easterOffset(0)},
		{"Pfingstsonntag", easterOffset(49)},
		{"Reformationstag", fixed(time.October, 31)},
	},
	"HB": {
		{"Reformationstag", fixed(time.October, 31)},
	},
	"HH": {
		{"Reformationstag", fixed(time.October, 31)},
	},
	"HE": {
		{"Fronleichnam", easterOffset(60)},
	},
	"MV": {
		{"Internationaler Frauentag", fixed(time.March, 8)},
		{"Reformationstag", fixed(time.October, 31)},
	},
	"NI": {
		{"Reformationstag", fixed(time.October, 31)},
	},
	"NW": {
		{"Fronleichnam", easterOffset(60)},
		{"Allerheiligen", fixed(time.November, 1)},
	},
	"RP": {
		{"Fronleichnam", easterOffset(60)},
		{"Allerheiligen", fixed(time.November, 1)},
	},
	"SL": {
		{"Fronleichnam", easterOffset(60)},
		{"Mariä Himmelfahrt", fixed(time.August, 15)},
		{"Allerheiligen", fixed(time.November, 1)},
	},
	"SN": {
		{"Reformationstag", fixed(time.October, 31)},
		{"Buß- und Bettag", bussUndBettag},
	},
	"ST": {
		{"Heilige Drei Könige", fixed(time.January, 6)},
		{"Reformationstag", fixed(time.October, 31)},
	},
	"SH": {
		{"Reformationstag", fixed(time.October, 31)},
	},
	"TH": {
		{"Weltkindertag", fixed(time.September, 20)},
		{"Reformationstag", fixed(time.October, 31)},
	},
}

var austriaNationwide = []rule{
	{"Neujahr", fixed(time.January, 1)},
	{"Heilige Drei Könige", fixed(time.January, 6)},
	{"Ostermontag", easterOffset(1)},
	{"Staatsfeiertag", fixed(time.May, 1)},
	{"Christi Himmelfahrt", easterOffset(39)},
	{"Pfingstmontag", easterOffset(50)},
	{"Fronleichnam", easterOffset(60)},
	{"Mariä Himmelfahrt", fixed(time.August, 15)},
	{"Nationalfeiertag", fixed(time.October, 26)},
	{"Allerheiligen", fixed(time.November, 1)},
	{"Mariä Empfängnis", fixed(time.December, 8)},
	{"Christtag", fixed(time.December, 25)},
	{"Stefanitag", fixed(time.December, 26)},
}

// NewRegionProvider creates a RegionProvider for the given country and
// subdivision codes. An empty subdivision yields nationwide holidays only.
func NewRegionProvider(country, subdivision string, logger *zap.Logger) (*RegionProvider, error) {
	var rules []rule

	switch country {
	case "DE":
		rules = append(rules, germanyNationwide...)
		if subdivision != "" {
			extra, ok := germanyStates[subdivision]
			if !ok {
				return nil, fmt.Errorf("unknown subdivision %q for country DE", subdivision)
			}
			rules = append(rules, extra...)
		}
	case "AT":
		rules = append(rules, austriaNationwide...)
	default:
		return nil, fmt.Errorf("unsupported country %q (supported: DE, AT)", country)
	}

	return &RegionProvider{
		country:     country,
		subdivision: subdivision,
		rules:       rules,
		logger:      logger,
	}, nil
}

// Year returns the holiday set for the given calendar year.
func (p *RegionProvider) Year(year int) (Set, error) {
	set := make(Set, len(p.rules))
	for _, r := range p.rules {
		set[r.date(year).Format("2006-01-02")] = r.name
	}

	p.logger.Debug("Computed holiday set",
		zap.String("country", p.country),
		zap.String("subdivision", p.subdivision),
		zap.Int("year", year),
		zap.Int("holidays", len(set)))

	return set, nil
}
