// Package catalog is the lookup layer the presentation side consumes:
// page slugs, slug resolution, and page retrieval.
//
// Every call rescans the asset tree; nothing is cached.
package catalog

import (
	"sort"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/scanner"
)

// Service answers catalog queries for one assets directory
type Service struct {
	root    string
	scanner *scanner.Scanner
}

// New creates a catalog service over root
func New(root string, opts ...scanner.Option) *Service {
	return &Service{
		root:    root,
		scanner: scanner.New(opts...),
	}
}

// Root returns the assets directory the service scans
func (s *Service) Root() string {
	return s.root
}

// Catalog scans and returns the full catalog
func (s *Service) Catalog() *models.Catalog {
	return s.scanner.Scan(s.root)
}

// ListSlugs returns the slug of every page, in catalog order
func (s *Service) ListSlugs() []string {
	catalog := s.Catalog()
	slugs := make([]string, 0, catalog.Len())
	for _, p := range catalog.Pages {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

// ResolveSlug returns the name of the first page whose slug matches
func (s *Service) ResolveSlug(slug string) (string, bool) {
	return resolve(s.Catalog(), slug)
}

// Page returns the page with the given name
func (s *Service) Page(name string) (*models.Page, bool) {
	return s.Catalog().Page(name)
}

// PageBySlug resolves slug and returns its page
func (s *Service) PageBySlug(slug string) (*models.Page, bool) {
	catalog := s.Catalog()
	name, ok := resolve(catalog, slug)
	if !ok {
		return nil, false
	}
	return catalog.Page(name)
}

// SlugCollisions maps each slug shared by more than one page to the page
// names that produce it, in catalog order. ResolveSlug always picks the
// first of them.
func (s *Service) SlugCollisions() map[string][]string {
	return collisions(s.Catalog())
}

func resolve(catalog *models.Catalog, slug string) (string, bool) {
	for _, p := range catalog.Pages {
		if p.Slug == slug {
			return p.Name, true
		}
	}
	return "", false
}

func collisions(catalog *models.Catalog) map[string][]string {
	bySlug := make(map[string][]string)
	for _, p := range catalog.Pages {
		bySlug[p.Slug] = append(bySlug[p.Slug], p.Name)
	}
	out := make(map[string][]string)
	for slug, names := range bySlug {
		if len(names) > 1 {
			out[slug] = names
		}
	}
	return out
}

// SortedSlugs returns the keys of a collision map in order
func SortedSlugs(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
