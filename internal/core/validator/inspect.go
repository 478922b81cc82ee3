package validator

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/neilberkman/portfolio/internal/core/fstree"
	"github.com/neilberkman/portfolio/internal/core/models"
)

// ImageInfo is what an image header says about the file
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// InspectImage decodes the header of one image file
func InspectImage(fsys fs.FS, name string) (ImageInfo, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image: %w", err)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func (v *Validator) inspectImage(fsys fs.FS, eventDir, eventName, filename string, result *models.ValidationResult) {
	info, err := InspectImage(fsys, fstree.Join(eventDir, filename))
	if err != nil {
		result.AddWarning(fmt.Sprintf("Image \"%s\" in event \"%s\" could not be decoded: %v", filename, eventName, err))
		return
	}
	v.logger.Debug("inspected image",
		zap.String("event", eventName),
		zap.String("file", filename),
		zap.String("format", info.Format),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height))
}
