// internal/domain/training/week.go
package training

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DaysPerWeek is the inclusive length of a training week.
const DaysPerWeek = 7

const objectKeyPrefix = "general/"

// Short month names as rendered by the es-ES locale.
var spanishShortMonths = [...]string{
	time.January:   "ene",
	time.February:  "feb",
	time.March:     "mar",
	time.April:     "abr",
	time.May:       "may",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "ago",
	time.September: "sept",
	time.October:   "oct",
	time.November:  "nov",
	time.December:  "dic",
}

// Week is a date-only training week. End is always Start + 6 days.
type Week struct {
	Start time.Time
	End   time.Time
}

// NewWeek builds the week starting on the calendar day of start; the clock part is dropped.
func NewWeek(start time.Time) Week {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return Week{
		Start: day,
		End:   day.AddDate(0, 0, DaysPerWeek-1),
	}
}

// ObjectKey is the storage key of the week's PDF. It only depends on Start.
func (w Week) ObjectKey() string {
	return objectKeyPrefix + w.Start.Format("2006-01-02") + ".pdf"
}

// Label is the human-facing name of the week, "4-10 Mar" or "29 Mar - 4 Abr".
func (w Week) Label() string {
	startMonth := MonthAbbrev(w.Start.Month())
	endMonth := MonthAbbrev(w.End.Month())
	if startMonth == endMonth {
		return fmt.Sprintf("%d-%d %s", w.Start.Day(), w.End.Day(), startMonth)
	}
	return fmt.Sprintf("%d %s - %d %s", w.Start.Day(), startMonth, w.End.Day(), endMonth)
}

// MonthAbbrev returns the capitalised Spanish short name of m.
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return cases.Title(language.Spanish).String(spanishShortMonths[m])
}
