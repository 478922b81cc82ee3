package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writeTree creates empty files under root for each slash-separated path.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan_MissingRootLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := New(WithLogger(zap.New(core)))

	catalog := s.Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if catalog == nil {
		t.Fatal("Scan() returned nil catalog")
	}
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d pages", catalog.Len())
	}
	if logs.FilterMessage("assets directory not found").Len() != 1 {
		t.Errorf("expected one missing-root warning, got %v", logs.All())
	}
}

func TestScan_EmptyRoot(t *testing.T) {
	catalog := Scan(t.TempDir())
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d pages", catalog.Len())
	}
}

func TestScan_BuildsCatalog(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"Maid Cafe/Opening Day_03-15-2024/2.jpg",
		"Maid Cafe/Opening Day_03-15-2024/1 (Jane Doe).JPG",
		"Maid Cafe/Opening Day_03-15-2024/notes.txt",
		"Maid Cafe/Opening Day_03-15-2024/nested/ignored.jpg",
	)

	catalog := Scan(root)
	if catalog.Len() != 1 {
		t.Fatalf("expected 1 page, got %d", catalog.Len())
	}

	page, ok := catalog.Page("Maid Cafe")
	if !ok {
		t.Fatal("page Maid Cafe missing")
	}
	if page.Slug != "maidcafe" {
		t.Errorf("Slug = %q, want maidcafe", page.Slug)
	}
	if page.EventCount != 1 {
		t.Fatalf("EventCount = %d, want 1", page.EventCount)
	}

	event := page.Events[0]
	if err := event.Validate(); err != nil {
		t.Errorf("event invariants broken: %v", err)
	}
	if event.Count != 2 {
		t.Fatalf("Count = %d, want 2", event.Count)
	}

	first := event.Images[0]
	if first.Filename != "1 (Jane Doe).JPG" {
		t.Errorf("first image = %q, want 1 (Jane Doe).JPG", first.Filename)
	}
	if first.Name != "1 (Jane Doe)" {
		t.Errorf("Name = %q, want %q", first.Name, "1 (Jane Doe)")
	}
	if want := "/assets/Maid Cafe/Opening Day_03-15-2024/1 (Jane Doe).JPG"; first.Path != want {
		t.Errorf("Path = %q, want %q", first.Path, want)
	}
	if event.CoverImage != first {
		t.Errorf("CoverImage = %+v, want first image", event.CoverImage)
	}
}

func TestScanFS_DropsEmptyEventsAndPages(t *testing.T) {
	fsys := fstest.MapFS{
		"Fashion/Spring_04-01-2024/1.jpg": {},
		"Fashion/Only Text/readme.txt":    {},
		"Cosplays/Empty/notes.txt":        {},
		"Cosplays/Nothing/.keep":          {},
		"stray.jpg":                       {},
	}

	catalog := New().ScanFS(fsys)
	if diff := cmp.Diff([]string{"Fashion"}, catalog.Names()); diff != "" {
		t.Fatalf("pages mismatch (-want +got):\n%s", diff)
	}

	page, _ := catalog.Page("Fashion")
	if diff := cmp.Diff([]string{"Spring_04-01-2024"}, page.EventNames()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if _, ok := page.Event("Only Text"); ok {
		t.Error("event with only a .txt file must not appear in the catalog")
	}
}

func TestScanFS_EventOrdering(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   []string
	}{
		{
			name:   "dated before undated regardless of alphabet",
			events: []string{"A_01-01-2024", "B"},
			want:   []string{"A_01-01-2024", "B"},
		},
		{
			name:   "dated before undated when undated sorts first alphabetically",
			events: []string{"Z_01-01-2020", "A"},
			want:   []string{"Z_01-01-2020", "A"},
		},
		{
			name:   "dated newest first",
			events: []string{"A_01-01-2024", "B_06-01-2024"},
			want:   []string{"B_06-01-2024", "A_01-01-2024"},
		},
		{
			name:   "year dominates month",
			events: []string{"Old_12-31-2022", "New_01-01-2023", "Mid_06-15-2022"},
			want:   []string{"New_01-01-2023", "Old_12-31-2022", "Mid_06-15-2022"},
		},
		{
			name:   "undated alphabetical",
			events: []string{"charlie", "Bravo", "alpha"},
			want:   []string{"alpha", "Bravo", "charlie"},
		},
		{
			name:   "full three tier order",
			events: []string{"Zoo", "Expo_02-02-2023", "Apple", "Con_11-20-2024", "Fest_2024"},
			want:   []string{"Con_11-20-2024", "Expo_02-02-2023", "Apple", "Fest_2024", "Zoo"},
		},
		{
			name:   "two digit years land in the 1900s",
			events: []string{"A_01-01-0099", "B_01-01-1950", "C_01-01-2000"},
			want:   []string{"C_01-01-2000", "A_01-01-0099", "B_01-01-1950"},
		},
		{
			name:   "invalid calendar date still sorts as dated",
			events: []string{"Plain", "Odd_02-30-2024"},
			want:   []string{"Odd_02-30-2024", "Plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for _, e := range tt.events {
				fsys["Page/"+e+"/1.jpg"] = &fstest.MapFile{}
			}

			catalog := New().ScanFS(fsys)
			page, ok := catalog.Page("Page")
			if !ok {
				t.Fatal("page missing")
			}
			if diff := cmp.Diff(tt.want, page.EventNames()); diff != "" {
				t.Errorf("event order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanFS_ImageOrderingIsLocaleAware(t *testing.T) {
	fsys := fstest.MapFS{
		"P/E/b.jpg":  {},
		"P/E/B.png":  {},
		"P/E/a.jpg":  {},
		"P/E/10.jpg": {},
		"P/E/2.jpg":  {},
		"P/E/é.gif":  {},
		"P/E/f.webp": {},
	}

	catalog := New().ScanFS(fsys)
	page, _ := catalog.Page("P")
	event, _ := page.Event("E")

	var got []string
	for _, img := range event.Images {
		got = append(got, img.Filename)
	}
	want := []string{"10.jpg", "2.jpg", "a.jpg", "b.jpg", "B.png", "é.gif", "f.webp"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("image order mismatch (-want +got):\n%s", diff)
	}
}

func TestScanFS_PagesKeepListingOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"Maid Cafe/E/1.jpg":            {},
		"Brand Collaborations/E/1.jpg": {},
		"Cosplays/E/1.jpg":             {},
	}

	catalog := New().ScanFS(fsys)
	want := []string{"Brand Collaborations", "Cosplays", "Maid Cafe"}
	if diff := cmp.Diff(want, catalog.Names()); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_PathPrefix(t *testing.T) {
	fsys := fstest.MapFS{"P/E/1.jpg": {}}

	catalog := New(WithPathPrefix("/static/photos")).ScanFS(fsys)
	page, _ := catalog.Page("P")
	if got := page.Events[0].Images[0].Path; got != "/static/photos/P/E/1.jpg" {
		t.Errorf("Path = %q", got)
	}
}

func TestScan_UnreadableEventDegradesToEmpty(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := t.TempDir()
	writeTree(t, root, "P/Good/1.jpg", "P/Locked/1.jpg")
	locked := filepath.Join(root, "P", "Locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	core, logs := observer.New(zapcore.ErrorLevel)
	catalog := New(WithLogger(zap.New(core))).Scan(root)

	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog after read failure, got %v", catalog.Names())
	}
	if logs.FilterMessage("error scanning assets").Len() != 1 {
		t.Errorf("expected one scan error log, got %v", logs.All())
	}
}
