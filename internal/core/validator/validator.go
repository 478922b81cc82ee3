// Package validator checks an asset tree against the site's naming and
// layout conventions.
//
// It walks the tree independently of the scanner and also reports what the
// scanner silently drops, such as empty events and non-image files. Findings
// are collected into a models.ValidationResult; the validator never returns
// an error.
package validator

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/fstree"
	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/pkg/assetnames"
)

// Validator runs validation passes over an asset tree
type Validator struct {
	logger  *zap.Logger
	inspect bool
}

// Option configures a Validator
type Option func(*Validator)

// WithLogger sets the logger used for progress diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithInspectImages enables decoding each image header. Files that cannot
// be decoded are reported as warnings.
func WithInspectImages(enabled bool) Option {
	return func(v *Validator) {
		v.inspect = enabled
	}
}

// New creates a validator
func New(opts ...Option) *Validator {
	v := &Validator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks rootDir with a default validator
func Validate(rootDir string) models.ValidationResult {
	return New().Validate(rootDir)
}

// Validate checks the asset tree rooted at rootDir
func (v *Validator) Validate(rootDir string) models.ValidationResult {
	if _, err := os.Stat(rootDir); err != nil {
		result := models.NewValidationResult()
		result.AddError(fmt.Sprintf("Assets directory not found: %s", rootDir))
		return result
	}
	return v.validateFS(os.DirFS(rootDir), rootDir)
}

// ValidateFS checks an asset tree exposed as an fs.FS. label names the
// root in messages.
func (v *Validator) ValidateFS(fsys fs.FS, label string) models.ValidationResult {
	return v.validateFS(fsys, label)
}

func (v *Validator) validateFS(fsys fs.FS, label string) models.ValidationResult {
	result := models.NewValidationResult()

	if !fstree.Exists(fsys, ".") {
		result.AddError(fmt.Sprintf("Assets directory not found: %s", label))
		return result
	}

	pageNames, err := fstree.Dirs(fsys, ".")
	if err != nil {
		result.AddError(fmt.Sprintf("Error reading assets directory: %v", err))
		result.Finalize()
		return result
	}

	result.Stats.TotalPages = len(pageNames)
	if len(pageNames) == 0 {
		result.AddWarning("No page directories found in assets directory")
	}

	for _, pageName := range pageNames {
		v.validatePage(fsys, pageName, &result)
	}

	result.Finalize()
	v.logger.Debug("validated assets",
		zap.String("root", label),
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))
	return result
}

func (v *Validator) validatePage(fsys fs.FS, pageName string, result *models.ValidationResult) {
	if hasTraversal(pageName) {
		result.AddError(fmt.Sprintf("Invalid page name \"%s\": contains path traversal characters", pageName))
		result.MarkPage(pageName)
		return
	}

	eventNames, err := fstree.Dirs(fsys, fstree.Join(pageName))
	if err != nil {
		result.AddError(fmt.Sprintf("Error reading page directory \"%s\": %v", pageName, err))
		result.MarkPage(pageName)
		return
	}

	result.Stats.TotalEvents += len(eventNames)
	if len(eventNames) == 0 {
		result.AddWarning(fmt.Sprintf("Page \"%s\" has no event directories", pageName))
		result.MarkPage(pageName)
	}

	for _, eventName := range eventNames {
		v.validateEvent(fsys, pageName, eventName, result)
	}
}

func (v *Validator) validateEvent(fsys fs.FS, pageName, eventName string, result *models.ValidationResult) {
	checkEventName(pageName, eventName, result)

	eventDir := fstree.Join(pageName, eventName)
	files, err := fstree.Files(fsys, eventDir)
	if err != nil {
		result.AddError(fmt.Sprintf("Error reading event directory \"%s\" in page \"%s\": %v", eventName, pageName, err))
		result.MarkEvent(pageName, eventName)
		return
	}

	var images, others []string
	for _, f := range files {
		if fstree.IsImage(f) {
			images = append(images, f)
		} else {
			others = append(others, f)
		}
	}

	result.Stats.TotalImages += len(images)
	if len(images) == 0 {
		result.AddWarning(fmt.Sprintf("Event \"%s\" in page \"%s\" has no valid image files", eventName, pageName))
		result.MarkEvent(pageName, eventName)
	}

	for _, filename := range images {
		if !checkImageName(eventName, filename, result) {
			continue
		}
		if v.inspect {
			v.inspectImage(fsys, eventDir, eventName, filename, result)
		}
	}

	if len(others) > 0 {
		result.AddWarning(fmt.Sprintf("Event \"%s\" in page \"%s\" contains non-image files: %s",
			eventName, pageName, strings.Join(others, ", ")))
	}
}

// checkEventName enforces "<title>_<MM-DD-YYYY>"
func checkEventName(pageName, eventName string, result *models.ValidationResult) {
	parsed := assetnames.ParseEventName(eventName)

	switch parsed.Form {
	case assetnames.NoDateToken:
		result.AddError(fmt.Sprintf("Event \"%s\" in page \"%s\" does not follow naming convention \"Event Name_MM-DD-YYYY\"",
			eventName, pageName))
		result.MarkEvent(pageName, eventName)
		return
	case assetnames.MalformedDateToken:
		result.AddError(fmt.Sprintf("Event \"%s\" has invalid date format. Expected MM-DD-YYYY, got \"%s\"",
			eventName, parsed.Token))
		result.MarkEvent(pageName, eventName)
	case assetnames.DateToken:
		if !parsed.Date.Valid() {
			result.AddError(fmt.Sprintf("Event \"%s\" has invalid date \"%s\" (not a real date)", eventName, parsed.Token))
			result.MarkEvent(pageName, eventName)
		}
	}

	if parsed.EmptyTitle() {
		result.AddError(fmt.Sprintf("Event \"%s\" has empty event title", eventName))
		result.MarkEvent(pageName, eventName)
	}
}

// checkImageName reports false when the file has an error-level problem
func checkImageName(eventName, filename string, result *models.ValidationResult) bool {
	// Callers only pass image files today; non-images are reported as a
	// single warning per event instead.
	if !fstree.IsImage(filename) {
		result.AddError(fmt.Sprintf("Invalid image format \"%s\" in event \"%s\". Supported: %s",
			filename, eventName, strings.Join(fstree.SupportedExtensions, ", ")))
		return false
	}

	if hasTraversal(filename) {
		result.AddError(fmt.Sprintf("Invalid filename \"%s\" in event \"%s\": contains path traversal characters",
			filename, eventName))
		return false
	}

	// Colons break CI artifact uploads of the exported site
	if strings.Contains(filename, ":") {
		result.AddError(fmt.Sprintf("Invalid filename \"%s\" in event \"%s\": contains colon (:) which breaks CI/CD artifact uploads. Rename to use dash (-) instead of colon (:)",
			filename, eventName))
		return false
	}

	if credit, ok := assetnames.ParseCredit(filename); ok {
		if strings.TrimSpace(credit.Name) == "" {
			result.AddWarning(fmt.Sprintf("Image \"%s\" in event \"%s\" has empty image name before credit", filename, eventName))
		}
		if strings.TrimSpace(credit.Credit) == "" {
			result.AddWarning(fmt.Sprintf("Image \"%s\" in event \"%s\" has empty credit information", filename, eventName))
		}
	}
	return true
}

func hasTraversal(name string) bool {
	return strings.Contains(name, "..") || strings.ContainsAny(name, `/\`)
}
