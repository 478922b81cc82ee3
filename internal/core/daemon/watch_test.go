package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/validator"
)

func waitResult(t *testing.T, results <-chan models.ValidationResult) models.ValidationResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for validation result")
		return models.ValidationResult{}
	}
}

func TestNewValidationDaemon_MissingRoot(t *testing.T) {
	_, err := NewValidationDaemon(filepath.Join(t.TempDir(), "missing"), validator.New(), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestValidationDaemon_RevalidatesOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	event := filepath.Join(root, "Fashion", "Show_03-03-2024")
	if err := os.MkdirAll(event, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(event, "1.jpg"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	results := make(chan models.ValidationResult, 16)
	d, err := NewValidationDaemon(root, validator.New(), func(r models.ValidationResult) {
		results <- r
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewValidationDaemon() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Start(ctx)
	}()

	first := waitResult(t, results)
	if !first.IsValid || first.Stats.TotalImages != 1 {
		t.Fatalf("initial result = %+v", first)
	}

	// A colon in a filename is an error
	if err := os.WriteFile(filepath.Join(event, "bad:name.jpg"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	second := waitResult(t, results)
	if second.IsValid {
		t.Errorf("expected invalid result after adding bad file, got %+v", second)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not stop")
	}

	stats := d.Stats()
	if stats.Runs < 2 || stats.Events == 0 {
		t.Errorf("Stats() = %+v, want at least 2 runs and some events", stats)
	}
	if stats.LastValid {
		t.Error("LastValid should reflect the latest invalid run")
	}
}

func TestShouldProcessEvent(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"create", fsnotify.Create, true},
		{"write", fsnotify.Write, true},
		{"remove", fsnotify.Remove, true},
		{"rename", fsnotify.Rename, true},
		{"chmod only", fsnotify.Chmod, false},
		{"write and chmod", fsnotify.Write | fsnotify.Chmod, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldProcessEvent(fsnotify.Event{Name: "x", Op: tt.op})
			if got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}
