package datemath

import (
	"strings"
	"time"
)

// weekdayName maps a weekday word to its time.Weekday. Entries are matched
// in slice order: full names sit before their abbreviations so that
// "next tuesday" never half-matches on "tue".
type weekdayName struct {
	name string
	day  time.Weekday
}

var weekdayNames = []weekdayName{
	{"sunday", time.Sunday},
	{"sun", time.Sunday},
	{"monday", time.Monday},
	{"mon", time.Monday},
	{"tuesday", time.Tuesday},
	{"tue", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"wed", time.Wednesday},
	{"thursday", time.Thursday},
	{"thu", time.Thursday},
	{"friday", time.Friday},
	{"fri", time.Friday},
	{"saturday", time.Saturday},
	{"sat", time.Saturday},
}

// monthName maps a month word to its time.Month, full names before
// abbreviations for the same reason as weekdayNames.
type monthName struct {
	name  string
	month time.Month
}

var monthNames = []monthName{
	{"january", time.January},
	{"jan", time.January},
	{"february", time.February},
	{"feb", time.February},
	{"march", time.March},
	{"mar", time.March},
	{"april", time.April},
	{"apr", time.April},
	{"may", time.May},
	{"june", time.June},
	{"jun", time.June},
	{"july", time.July},
	{"jul", time.July},
	{"august", time.August},
	{"aug", time.August},
	{"september", time.September},
	{"sep", time.September},
	{"october", time.October},
	{"oct", time.October},
	{"november", time.November},
	{"nov", time.November},
	{"december", time.December},
	{"dec", time.December},
}

// Matching is plain substring containment over the lowercased phrase, so the
// full-name-first ordering above is load-bearing.
func matchWeekday(phrase string) (time.Weekday, bool) {
	for _, w := range weekdayNames {
		if strings.Contains(phrase, w.name) {
			return w.day, true
		}
	}
	return 0, false
}

func matchMonth(phrase string) (time.Month, bool) {
	for _, m := range monthNames {
		if strings.Contains(phrase, m.name) {
			return m.month, true
		}
	}
	return 0, false
}
