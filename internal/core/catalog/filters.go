package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/neilberkman/portfolio/internal/core/models"
)

// EventFilter restricts events to a date range
type EventFilter struct {
	AfterDate  time.Time // Only events on or after this date
	BeforeDate time.Time // Only events on or before this date
	HasAfter   bool
	HasBefore  bool
}

// Active reports whether any bound is set
func (f EventFilter) Active() bool {
	return f.HasAfter || f.HasBefore
}

// ParseEventFilter builds a filter from natural-language bounds such as
// "last month", "2 weeks ago" or "2024-06-01". Empty strings leave a bound
// unset.
func ParseEventFilter(after, before string, now time.Time) (EventFilter, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	var filter EventFilter
	if after != "" {
		t, err := parseDate(w, after, now)
		if err != nil {
			return filter, fmt.Errorf("invalid --after value: %w", err)
		}
		filter.AfterDate, filter.HasAfter = t, true
	}
	if before != "" {
		t, err := parseDate(w, before, now)
		if err != nil {
			return filter, fmt.Errorf("invalid --before value: %w", err)
		}
		filter.BeforeDate, filter.HasBefore = t, true
	}
	return filter, nil
}

// parseDate tries fixed layouts first, then natural language. The when
// rules match fragments of absolute dates ("06-01" as a time of day), so
// they only get strings no layout accepts, and must consume all of it.
func parseDate(w *when.Parser, dateStr string, now time.Time) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"01-02-2006",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	trimmed := strings.TrimSpace(dateStr)
	result, err := w.Parse(trimmed, now)
	if err == nil && result != nil && strings.EqualFold(strings.TrimSpace(result.Text), trimmed) {
		return result.Time, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// FilterEvents returns the page's events that fall within the filter, in
// display order. Undated events are dropped whenever a bound is set.
func FilterEvents(page *models.Page, filter EventFilter) []models.Event {
	if !filter.Active() {
		return page.Events
	}

	var out []models.Event
	for _, e := range page.Events {
		d, ok := e.Date()
		if !ok {
			continue
		}
		day := d.Time()
		if filter.HasAfter && day.Before(truncateDay(filter.AfterDate)) {
			continue
		}
		if filter.HasBefore && day.After(truncateDay(filter.BeforeDate)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// truncateDay keeps the calendar day of t as midnight UTC
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
