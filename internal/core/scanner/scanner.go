// Package scanner builds the in-memory asset catalog from the
// Page/Event/Image directory tree.
//
// Scanning is best-effort: a missing root or a read failure is logged and
// produces an empty catalog rather than an error.
package scanner

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/fstree"
	"github.com/neilberkman/portfolio/internal/core/models"
)

// DefaultPathPrefix is prepended to image paths: /assets/<page>/<event>/<file>
const DefaultPathPrefix = "/assets"

// Scanner walks an asset tree and builds a catalog
type Scanner struct {
	logger     *zap.Logger
	pathPrefix string
}

// Option configures a Scanner
type Option func(*Scanner)

// WithLogger sets the logger used for scan diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPathPrefix sets the site-relative prefix of image paths
func WithPathPrefix(prefix string) Option {
	return func(s *Scanner) {
		s.pathPrefix = prefix
	}
}

// New creates a scanner
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger:     zap.NewNop(),
		pathPrefix: DefaultPathPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks rootDir with a default scanner
func Scan(rootDir string) *models.Catalog {
	return New().Scan(rootDir)
}

// Scan walks rootDir and returns its catalog. It never fails: problems are
// logged and yield an empty catalog.
func (s *Scanner) Scan(rootDir string) *models.Catalog {
	if _, err := os.Stat(rootDir); err != nil {
		s.logger.Warn("assets directory not found", zap.String("root", rootDir))
		return &models.Catalog{}
	}
	return s.scanFS(os.DirFS(rootDir), rootDir)
}

// ScanFS is Scan over an fs.FS whose root is the assets directory
func (s *Scanner) ScanFS(fsys fs.FS) *models.Catalog {
	return s.scanFS(fsys, ".")
}

func (s *Scanner) scanFS(fsys fs.FS, label string) *models.Catalog {
	if !fstree.Exists(fsys, ".") {
		s.logger.Warn("assets directory not found", zap.String("root", label))
		return &models.Catalog{}
	}

	catalog, err := s.buildCatalog(fsys)
	if err != nil {
		s.logger.Error("error scanning assets", zap.String("root", label), zap.Error(err))
		return &models.Catalog{}
	}

	s.logger.Debug("scanned assets",
		zap.String("root", label),
		zap.Int("pages", catalog.Len()))
	return catalog
}

func (s *Scanner) buildCatalog(fsys fs.FS) (*models.Catalog, error) {
	pageNames, err := fstree.Dirs(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	// Collators keep internal buffers, so each scan gets its own
	order := newOrdering()
	catalog := &models.Catalog{Pages: []*models.Page{}}

	for _, pageName := range pageNames {
		events, err := s.scanPage(fsys, pageName, order)
		if err != nil {
			return nil, err
		}

		page, ok := models.NewPage(pageName, events)
		if !ok {
			s.logger.Debug("skipping page without images", zap.String("page", pageName))
			continue
		}
		catalog.Pages = append(catalog.Pages, page)
	}

	return catalog, nil
}

func (s *Scanner) scanPage(fsys fs.FS, pageName string, order *ordering) ([]models.Event, error) {
	eventNames, err := fstree.Dirs(fsys, fstree.Join(pageName))
	if err != nil {
		return nil, fmt.Errorf("failed to list events in %q: %w", pageName, err)
	}

	var events []models.Event
	for _, eventName := range eventNames {
		files, err := fstree.Files(fsys, fstree.Join(pageName, eventName))
		if err != nil {
			return nil, fmt.Errorf("failed to list images in %q/%q: %w", pageName, eventName, err)
		}

		var images []models.Image
		for _, filename := range files {
			if !fstree.IsImage(filename) {
				continue
			}
			images = append(images, models.Image{
				Filename: filename,
				Path:     s.imagePath(pageName, eventName, filename),
				Name:     fstree.BaseName(filename),
			})
		}
		order.sortImages(images)

		event, ok := models.NewEvent(eventName, images)
		if !ok {
			s.logger.Debug("skipping event without images",
				zap.String("page", pageName),
				zap.String("event", eventName))
			continue
		}
		events = append(events, event)
	}

	order.sortEvents(events)
	return events, nil
}

// imagePath joins with plain slashes; names are kept verbatim
func (s *Scanner) imagePath(page, event, filename string) string {
	return s.pathPrefix + "/" + page + "/" + event + "/" + filename
}
