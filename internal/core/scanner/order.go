package scanner

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/pkg/assetnames"
)

// ordering holds the sort rules for one scan. A collate.Collator is not safe
// for concurrent use, so it must not be shared between scans.
type ordering struct {
	collator *collate.Collator
}

func newOrdering() *ordering {
	return &ordering{collator: collate.New(language.Und)}
}

// compareNames is locale-aware, falling back to byte order when the
// collator considers two different names equal.
func (o *ordering) compareNames(a, b string) int {
	if c := o.collator.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func (o *ordering) sortImages(images []models.Image) {
	slices.SortStableFunc(images, func(a, b models.Image) int {
		return o.compareNames(a.Filename, b.Filename)
	})
}

type datedEvent struct {
	event   models.Event
	date    assetnames.Date
	hasDate bool
}

// sortEvents orders events in three tiers: dated events first, newest
// first; then undated events by raw name, ascending.
func (o *ordering) sortEvents(events []models.Event) {
	keyed := make([]datedEvent, len(events))
	for i, e := range events {
		d, ok := assetnames.ExtractDate(e.Name)
		keyed[i] = datedEvent{event: e, date: d, hasDate: ok}
	}

	slices.SortStableFunc(keyed, func(a, b datedEvent) int {
		switch {
		case a.hasDate && b.hasDate:
			return b.date.Time().Compare(a.date.Time())
		case a.hasDate:
			return -1
		case b.hasDate:
			return 1
		default:
			return o.compareNames(a.event.Name, b.event.Name)
		}
	})

	for i, k := range keyed {
		events[i] = k.event
	}
}
