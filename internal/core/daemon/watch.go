package daemon

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/validator"
)

// DefaultDebounce is how long the tree must stay quiet before revalidating
const DefaultDebounce = 300 * time.Millisecond

// ValidationDaemon revalidates the asset tree whenever it changes
type ValidationDaemon struct {
	watcher   *fsnotify.Watcher
	root      string
	validator *validator.Validator
	onResult  func(models.ValidationResult)
	logger    *zap.Logger
	debounce  time.Duration

	mu    sync.Mutex
	stats DaemonStats
}

// DaemonStats tracks daemon activity
type DaemonStats struct {
	StartTime time.Time
	Runs      int
	LastRun   time.Time
	LastValid bool
	Events    int
	Errors    int
}

// Option configures a ValidationDaemon
type Option func(*ValidationDaemon)

// WithLogger sets the daemon logger
func WithLogger(logger *zap.Logger) Option {
	return func(d *ValidationDaemon) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithDebounce sets the quiet period before a rerun
func WithDebounce(dur time.Duration) Option {
	return func(d *ValidationDaemon) {
		d.debounce = dur
	}
}

// NewValidationDaemon creates a daemon for root. onResult receives every
// validation result, starting with the initial run.
func NewValidationDaemon(root string, v *validator.Validator, onResult func(models.ValidationResult), opts ...Option) (*ValidationDaemon, error) {
	// Verify watch path exists
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("watch path does not exist: %s", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	d := &ValidationDaemon{
		watcher:   watcher,
		root:      root,
		validator: v,
		onResult:  onResult,
		logger:    zap.NewNop(),
		debounce:  DefaultDebounce,
		stats: DaemonStats{
			StartTime: time.Now(),
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Start validates once, then revalidates on every settled change until ctx
// is cancelled. The watcher is closed on return.
func (d *ValidationDaemon) Start(ctx context.Context) error {
	defer func() {
		_ = d.watcher.Close()
	}()

	d.logger.Info("validation daemon starting", zap.String("root", d.root))

	if err := d.setupWatches(); err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	d.run()

	timer := time.NewTimer(d.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("validation daemon shutting down")
			return nil

		case event, ok := <-d.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if !shouldProcessEvent(event) {
				continue
			}
			d.logger.Debug("file event", zap.String("op", event.Op.String()), zap.String("path", event.Name))
			d.handleFileEvent(event)
			timer.Reset(d.debounce)
			pending = true

		case err, ok := <-d.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			d.logger.Warn("watcher error", zap.Error(err))
			d.mu.Lock()
			d.stats.Errors++
			d.mu.Unlock()

		case <-timer.C:
			if pending {
				pending = false
				d.run()
			}
		}
	}
}

// Stats returns a snapshot of daemon activity
func (d *ValidationDaemon) Stats() DaemonStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// setupWatches watches the root and every directory below it
func (d *ValidationDaemon) setupWatches() error {
	return filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if err := d.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// shouldProcessEvent ignores chmod-only events
func shouldProcessEvent(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// handleFileEvent extends the watch to newly created directories
func (d *ValidationDaemon) handleFileEvent(event fsnotify.Event) {
	d.mu.Lock()
	d.stats.Events++
	d.mu.Unlock()

	if event.Op&fsnotify.Create == 0 {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	_ = filepath.WalkDir(event.Name, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if err := d.watcher.Add(path); err != nil {
				d.logger.Warn("failed to watch new directory", zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
}

func (d *ValidationDaemon) run() {
	result := d.validator.Validate(d.root)

	d.mu.Lock()
	d.stats.Runs++
	d.stats.LastRun = time.Now()
	d.stats.LastValid = result.IsValid
	d.mu.Unlock()

	if d.onResult != nil {
		d.onResult(result)
	}
}
