package models

import (
	"errors"
	"fmt"

	"github.com/neilberkman/portfolio/pkg/assetnames"
)

// Image is one photo file inside an event directory
type Image struct {
	Filename string `json:"filename" yaml:"filename"` // Raw file name
	Path     string `json:"path" yaml:"path"`         // Site-relative reference: /assets/<page>/<event>/<filename>
	Name     string `json:"name" yaml:"name"`         // Filename without extension
}

// Credit returns the photographer credit embedded in the filename, if any
func (i Image) Credit() (string, bool) {
	return assetnames.ExtractCredit(i.Filename)
}

// Event is a named, optionally dated collection of images within a page
type Event struct {
	Name       string  `json:"name" yaml:"name"` // Raw directory name, may end in _MM-DD-YYYY
	Images     []Image `json:"images" yaml:"images"`
	Count      int     `json:"count" yaml:"count"`
	CoverImage Image   `json:"coverImage" yaml:"coverImage"` // First image in sorted order
}

// NewEvent builds an event from images that are already sorted.
// It returns false when there are no images; such events never exist.
func NewEvent(name string, images []Image) (Event, bool) {
	if len(images) == 0 {
		return Event{}, false
	}
	return Event{
		Name:       name,
		Images:     images,
		Count:      len(images),
		CoverImage: images[0],
	}, true
}

// DisplayName is the event name without its date suffix
func (e Event) DisplayName() string {
	return assetnames.DisplayName(e.Name)
}

// Date returns the date encoded in the event name
func (e Event) Date() (assetnames.Date, bool) {
	return assetnames.ExtractDate(e.Name)
}

// Validate checks the event invariants
func (e *Event) Validate() error {
	if e.Name == "" {
		return errors.New("event name is required")
	}
	if len(e.Images) == 0 {
		return fmt.Errorf("event %q has no images", e.Name)
	}
	if e.Count != len(e.Images) {
		return fmt.Errorf("event %q count %d does not match %d images", e.Name, e.Count, len(e.Images))
	}
	if e.CoverImage != e.Images[0] {
		return fmt.Errorf("event %q cover image is not its first image", e.Name)
	}
	return nil
}

// Page is a top-level content category with its events in display order
type Page struct {
	Name       string  `json:"name" yaml:"name"` // Directory name, arbitrary display text
	Slug       string  `json:"slug" yaml:"slug"`
	Events     []Event `json:"events" yaml:"events"` // Sorted: dated newest first, then undated by name
	EventCount int     `json:"eventCount" yaml:"eventCount"`
}

// NewPage builds a page from events that are already sorted.
// It returns false when there are no events.
func NewPage(name string, events []Event) (*Page, bool) {
	if len(events) == 0 {
		return nil, false
	}
	return &Page{
		Name:       name,
		Slug:       assetnames.Slugify(name),
		Events:     events,
		EventCount: len(events),
	}, true
}

// Event looks up an event by its raw name
func (p *Page) Event(name string) (*Event, bool) {
	for i := range p.Events {
		if p.Events[i].Name == name {
			return &p.Events[i], true
		}
	}
	return nil, false
}

// EventNames returns the event names in display order
func (p *Page) EventNames() []string {
	names := make([]string, len(p.Events))
	for i, e := range p.Events {
		names[i] = e.Name
	}
	return names
}

// ImageCount is the total number of images across the page's events
func (p *Page) ImageCount() int {
	n := 0
	for _, e := range p.Events {
		n += e.Count
	}
	return n
}

// Catalog maps page names to pages, in directory-listing order
type Catalog struct {
	Pages []*Page `json:"pages" yaml:"pages"`
}

// Page looks up a page by name
func (c *Catalog) Page(name string) (*Page, bool) {
	for _, p := range c.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Names returns the page names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		names[i] = p.Name
	}
	return names
}

// Len is the number of pages
func (c *Catalog) Len() int {
	return len(c.Pages)
}
