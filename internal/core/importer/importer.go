// Package importer adds new events to an asset tree: it creates the event
// directory under its page and places photo files in it with sequential,
// tag-suffixed names.
package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/fstree"
	"github.com/neilberkman/portfolio/pkg/assetnames"
)

// ErrTargetExists is returned when a different file already occupies a
// target name
var ErrTargetExists = errors.New("target file already exists")

// EventPlan describes one event to add
type EventPlan struct {
	Page  string   // Existing or new page directory
	Title string   // Event title, without date
	Date  string   // MM-DD-YYYY, optional
	Tags  []string // Appended to every filename as " (tag)"
	Files []string // Source image paths, placed in order
}

// FolderName is the event directory name: "<title>_<date>" or "<title>"
func (p EventPlan) FolderName() string {
	if p.Date != "" {
		return p.Title + "_" + p.Date
	}
	return p.Title
}

// Validate checks that the plan produces names the validator accepts
func (p EventPlan) Validate() error {
	if strings.TrimSpace(p.Page) == "" {
		return errors.New("page is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	for _, name := range []string{p.Page, p.Title} {
		if strings.TrimSpace(name) == "." {
			return fmt.Errorf("invalid name %q: must name a directory", name)
		}
		if strings.Contains(name, "..") || strings.ContainsAny(name, `/\:`) {
			return fmt.Errorf("invalid name %q: contains path or colon characters", name)
		}
	}
	for _, tag := range p.Tags {
		if strings.ContainsAny(tag, `()/\:`) {
			return fmt.Errorf("invalid tag %q", tag)
		}
	}

	if p.Date != "" {
		parsed := assetnames.ParseEventName(p.FolderName())
		if parsed.Form != assetnames.DateToken || parsed.Token != p.Date {
			return fmt.Errorf("date must be in MM-DD-YYYY format, got %q", p.Date)
		}
		if !parsed.Date.Valid() {
			return fmt.Errorf("date %q is not a real date", p.Date)
		}
	}

	for _, f := range p.Files {
		if ext := fstree.Ext(f); ext != "" && !fstree.IsImage(f) {
			return fmt.Errorf("unsupported image format %q (supported: %s)", f, strings.Join(fstree.SupportedExtensions, ", "))
		}
	}
	return nil
}

// TargetName is the filename for the i-th source file:
// "<i> (tag1) (tag2).<ext>". Files without an extension become .jpg.
func (p EventPlan) TargetName(i int, source string) string {
	ext := strings.ToLower(fstree.Ext(filepath.Base(source)))
	if ext == "" {
		ext = ".jpg"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d", i)
	for _, tag := range p.Tags {
		fmt.Fprintf(&b, " (%s)", tag)
	}
	b.WriteString(ext)
	return b.String()
}

// Placement is one source file and where it goes
type Placement struct {
	Source string
	Target string
}

// Importer places files into an asset tree
type Importer struct {
	root     string
	mirror   string
	move     bool
	logger   *zap.Logger
	progress ProgressCallback
}

// Option configures an Importer
type Option func(*Importer)

// WithLogger sets the importer logger
func WithLogger(logger *zap.Logger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMirror also copies every placed file into the same layout under dir,
// for sites that serve a separate public copy of the assets.
func WithMirror(dir string) Option {
	return func(i *Importer) {
		i.mirror = dir
	}
}

// WithMove moves source files instead of copying them
func WithMove(move bool) Option {
	return func(i *Importer) {
		i.move = move
	}
}

// WithProgress reports each placed file
func WithProgress(p ProgressCallback) Option {
	return func(i *Importer) {
		i.progress = p
	}
}

// New creates an importer rooted at the assets directory
func New(root string, opts ...Option) *Importer {
	i := &Importer{root: root, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// EventDir returns the directory the plan's event lives in
func (i *Importer) EventDir(p EventPlan) string {
	return filepath.Join(i.root, p.Page, p.FolderName())
}

// Plan validates p and lists where each file will go, without touching
// the filesystem
func (i *Importer) Plan(p EventPlan) ([]Placement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	dir := i.EventDir(p)
	// The event must sit exactly at <root>/<page>/<event>
	rel, err := filepath.Rel(i.root, dir)
	if err != nil || len(strings.Split(rel, string(filepath.Separator))) != 2 {
		return nil, fmt.Errorf("event directory %q is not at <assets>/<page>/<event>", dir)
	}
	placements := make([]Placement, len(p.Files))
	for n, src := range p.Files {
		placements[n] = Placement{Source: src, Target: filepath.Join(dir, p.TargetName(n, src))}
	}
	return placements, nil
}

// Import creates the event directory and places every file. A target that
// already holds an identical file is skipped; a different one is an error.
func (i *Importer) Import(p EventPlan) ([]Placement, error) {
	placements, err := i.Plan(p)
	if err != nil {
		return nil, err
	}

	dir := i.EventDir(p)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create event directory: %w", err)
	}
	var mirrorDir string
	if i.mirror != "" {
		mirrorDir = filepath.Join(i.mirror, p.Page, p.FolderName())
		if err := os.MkdirAll(mirrorDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create mirror directory: %w", err)
		}
	}

	for _, pl := range placements {
		if err := i.place(pl); err != nil {
			return nil, err
		}
		if mirrorDir != "" {
			mirrored := Placement{Source: pl.Target, Target: filepath.Join(mirrorDir, filepath.Base(pl.Target))}
			if err := copyFile(mirrored.Source, mirrored.Target); err != nil {
				return nil, fmt.Errorf("failed to mirror %s: %w", pl.Target, err)
			}
		}
		if i.progress != nil {
			i.progress.Update(filepath.Base(pl.Target))
		}
	}

	if i.progress != nil {
		i.progress.Finish()
	}
	i.logger.Info("event imported",
		zap.String("dir", dir),
		zap.Int("files", len(placements)))
	return placements, nil
}

func (i *Importer) place(pl Placement) error {
	if _, err := os.Stat(pl.Target); err == nil {
		same, err := sameContent(pl.Source, pl.Target)
		if err != nil {
			return fmt.Errorf("failed to compare %s: %w", pl.Target, err)
		}
		if !same {
			return fmt.Errorf("%w: %s", ErrTargetExists, pl.Target)
		}
		// File already placed - skip
		i.logger.Debug("skipping identical file", zap.String("target", pl.Target))
		return nil
	}

	if i.move {
		if err := os.Rename(pl.Source, pl.Target); err == nil {
			return nil
		}
		// Cross-device: fall back to copy and remove
		if err := copyFile(pl.Source, pl.Target); err != nil {
			return fmt.Errorf("failed to move %s: %w", pl.Source, err)
		}
		if err := os.Remove(pl.Source); err != nil {
			return fmt.Errorf("failed to remove %s: %w", pl.Source, err)
		}
		return nil
	}

	if err := copyFile(pl.Source, pl.Target); err != nil {
		return fmt.Errorf("failed to copy %s: %w", pl.Source, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func sameContent(a, b string) (bool, error) {
	ha, err := computeFileHash(a)
	if err != nil {
		return false, err
	}
	hb, err := computeFileHash(b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
