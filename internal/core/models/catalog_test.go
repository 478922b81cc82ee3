package models

import (
	"testing"
)

func TestNewEvent(t *testing.T) {
	images := []Image{
		{Filename: "1.jpg", Path: "/assets/P/E/1.jpg", Name: "1"},
		{Filename: "2.jpg", Path: "/assets/P/E/2.jpg", Name: "2"},
	}

	e, ok := NewEvent("E_01-02-2024", images)
	if !ok {
		t.Fatal("NewEvent() with images should succeed")
	}
	if e.Count != 2 {
		t.Errorf("Count = %d, want 2", e.Count)
	}
	if e.CoverImage != images[0] {
		t.Errorf("CoverImage = %+v, want %+v", e.CoverImage, images[0])
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if e.DisplayName() != "E" {
		t.Errorf("DisplayName() = %q, want %q", e.DisplayName(), "E")
	}
	if d, ok := e.Date(); !ok || d.Year != 2024 || d.Month != 1 || d.Day != 2 {
		t.Errorf("Date() = %+v, %v", d, ok)
	}

	if _, ok := NewEvent("Empty", nil); ok {
		t.Error("NewEvent() without images should report false")
	}
}

func TestEventValidate(t *testing.T) {
	img := Image{Filename: "1.jpg", Path: "/assets/P/E/1.jpg", Name: "1"}
	other := Image{Filename: "2.jpg", Path: "/assets/P/E/2.jpg", Name: "2"}

	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{"valid", Event{Name: "E", Images: []Image{img}, Count: 1, CoverImage: img}, false},
		{"missing name", Event{Images: []Image{img}, Count: 1, CoverImage: img}, true},
		{"no images", Event{Name: "E"}, true},
		{"count mismatch", Event{Name: "E", Images: []Image{img}, Count: 2, CoverImage: img}, true},
		{"wrong cover", Event{Name: "E", Images: []Image{img, other}, Count: 2, CoverImage: other}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestImageCredit(t *testing.T) {
	img := Image{Filename: "4 (Jane Doe).jpg"}
	if c, ok := img.Credit(); !ok || c != "Jane Doe" {
		t.Errorf("Credit() = (%q, %v)", c, ok)
	}
}

func TestNewPage(t *testing.T) {
	img := Image{Filename: "1.jpg"}
	a, _ := NewEvent("A_01-01-2024", []Image{img})
	b, _ := NewEvent("B", []Image{img, img})

	p, ok := NewPage("Maid Cafe", []Event{a, b})
	if !ok {
		t.Fatal("NewPage() should succeed")
	}
	if p.Slug != "maidcafe" {
		t.Errorf("Slug = %q, want maidcafe", p.Slug)
	}
	if p.EventCount != 2 {
		t.Errorf("EventCount = %d, want 2", p.EventCount)
	}
	if p.ImageCount() != 3 {
		t.Errorf("ImageCount() = %d, want 3", p.ImageCount())
	}
	if e, ok := p.Event("B"); !ok || e.Count != 2 {
		t.Errorf("Event(B) = %+v, %v", e, ok)
	}
	if _, ok := p.Event("missing"); ok {
		t.Error("Event(missing) should report false")
	}

	if _, ok := NewPage("Empty", nil); ok {
		t.Error("NewPage() without events should report false")
	}
}

func TestCatalogLookup(t *testing.T) {
	img := Image{Filename: "1.jpg"}
	e, _ := NewEvent("E", []Image{img})
	p1, _ := NewPage("Fashion", []Event{e})
	p2, _ := NewPage("Cosplays", []Event{e})

	c := &Catalog{Pages: []*Page{p1, p2}}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	names := c.Names()
	if len(names) != 2 || names[0] != "Fashion" || names[1] != "Cosplays" {
		t.Errorf("Names() = %v", names)
	}
	if p, ok := c.Page("Cosplays"); !ok || p != p2 {
		t.Errorf("Page(Cosplays) = %v, %v", p, ok)
	}
	if _, ok := c.Page("Nope"); ok {
		t.Error("Page(Nope) should report false")
	}
}

func TestValidationResult(t *testing.T) {
	r := NewValidationResult()
	if !r.IsValid {
		t.Fatal("new result should be valid")
	}

	r.AddWarning("just a warning")
	r.Finalize()
	if !r.IsValid {
		t.Error("warnings must not invalidate the result")
	}

	r.AddError("broken")
	r.MarkPage("P")
	r.MarkPage("P")
	r.MarkEvent("P", "E")
	r.Finalize()
	if r.IsValid {
		t.Error("errors must invalidate the result")
	}
	if len(r.Stats.PagesWithIssues) != 2 {
		t.Errorf("PagesWithIssues = %v, duplicates must be kept", r.Stats.PagesWithIssues)
	}
	if r.Stats.EventsWithIssues[0] != "P/E" {
		t.Errorf("EventsWithIssues[0] = %q, want P/E", r.Stats.EventsWithIssues[0])
	}
}
