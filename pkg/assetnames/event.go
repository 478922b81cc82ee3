package assetnames

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// dateSuffixPattern matches the trailing "_MM-DD-YYYY" of an event name.
	dateSuffixPattern = regexp.MustCompile(`_(\d{2})-(\d{2})-(\d{4})$`)

	// conventionPattern is the full "<title>_<MM-DD-YYYY>" naming convention.
	conventionPattern = regexp.MustCompile(`^(.*)_(\d{2}-\d{2}-\d{4})$`)

	// dateTokenPattern catches names that end in something date-like that is
	// not in MM-DD-YYYY shape ("Expo_2024", "Expo_1-5-2024").
	dateTokenPattern = regexp.MustCompile(`^(.*)_(\d[\d-]*)$`)
)

// Date is the month/day/year triple encoded in an event name. It is taken
// from the digits verbatim and may not be a real calendar date.
type Date struct {
	Month int
	Day   int
	Year  int
}

// Time returns the date at midnight UTC. Out-of-range fields roll over the
// way time.Date normalizes them, so an invalid date still orders sensibly.
// Years 0-99 are read as 1900-1999 so two-digit folder years sort as 19xx.
func (d Date) Time() time.Time {
	year := d.Year
	if year >= 0 && year <= 99 {
		year += 1900
	}
	return time.Date(year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the date exists on the calendar. Years below 100 are
// rejected.
func (d Date) Valid() bool {
	if d.Year < 100 {
		return false
	}
	t := d.Time()
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// String renders the date as MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month, d.Day, d.Year)
}

// ExtractDate returns the date encoded in the trailing _MM-DD-YYYY suffix of
// an event name. The calendar is not checked: "Foo_02-30-2024" still yields
// a Date.
func ExtractDate(eventName string) (Date, bool) {
	m := dateSuffixPattern.FindStringSubmatch(eventName)
	if m == nil {
		return Date{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return Date{Month: month, Day: day, Year: year}, true
}

// FormatDate re-renders the trailing date suffix as "MM/DD/YYYY" using the
// raw digits.
func FormatDate(eventName string) (string, bool) {
	m := dateSuffixPattern.FindStringSubmatch(eventName)
	if m == nil {
		return "", false
	}
	return m[1] + "/" + m[2] + "/" + m[3], true
}

// DisplayName returns the event name without its date suffix. Names without
// a suffix are returned unchanged.
func DisplayName(eventName string) string {
	loc := dateSuffixPattern.FindStringIndex(eventName)
	if loc == nil {
		return eventName
	}
	return eventName[:loc[0]]
}

// DateSuffix returns the "_MM-DD-YYYY" suffix DisplayName strips, or "".
func DateSuffix(eventName string) string {
	loc := dateSuffixPattern.FindStringIndex(eventName)
	if loc == nil {
		return ""
	}
	return eventName[loc[0]:]
}

// TokenForm classifies what follows the last underscore of an event name.
type TokenForm int

const (
	// NoDateToken means the name does not follow the naming convention.
	NoDateToken TokenForm = iota
	// MalformedDateToken means the name ends in digits that are not MM-DD-YYYY.
	MalformedDateToken
	// DateToken means the name ends in a well-formed MM-DD-YYYY token.
	DateToken
)

// EventName is an event directory name split into its parts.
type EventName struct {
	Raw   string
	Title string
	Token string
	Form  TokenForm
	Date  Date
}

// EmptyTitle reports whether nothing but whitespace precedes the date token.
func (e EventName) EmptyTitle() bool {
	return strings.TrimSpace(e.Title) == ""
}

// ParseEventName splits an event name of the form "<title>_<MM-DD-YYYY>".
func ParseEventName(eventName string) EventName {
	parsed := EventName{Raw: eventName}
	if m := conventionPattern.FindStringSubmatch(eventName); m != nil {
		parsed.Title, parsed.Token, parsed.Form = m[1], m[2], DateToken
		parsed.Date, _ = ExtractDate(eventName)
		return parsed
	}
	if m := dateTokenPattern.FindStringSubmatch(eventName); m != nil {
		parsed.Title, parsed.Token, parsed.Form = m[1], m[2], MalformedDateToken
		return parsed
	}
	parsed.Title = eventName
	return parsed
}
