package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/neilberkman/portfolio/internal/core/models"
)

// ValidateAssetPath checks that assetPath lies inside rootDir and follows
// the <root>/<Page>/<Event>/<Image> layout. The filesystem is not touched.
func ValidateAssetPath(rootDir, assetPath string) models.ValidationResult {
	result := models.NewValidationResult()

	root := filepath.Clean(rootDir)
	rel, err := filepath.Rel(root, filepath.Clean(assetPath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		result.AddError(fmt.Sprintf("Asset path \"%s\" is not within assets directory", assetPath))
		return result
	}

	if parts := strings.Split(rel, string(filepath.Separator)); len(parts) != 3 {
		result.AddError(fmt.Sprintf("Asset path \"%s\" does not follow expected structure: assets/[Page]/[Event]/[Image]", assetPath))
	}

	return result
}
