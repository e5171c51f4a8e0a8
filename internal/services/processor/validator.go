package processor

import (
	"errors"
	"fmt"

	"github.com/phambaophuc/watermark-cleaner/internal/models"
)

var ErrInvalidArea = errors.New("invalid watermark area")

// ValidateArea rejects empty rectangles only. Areas that reach past the image
// are allowed; cropping and pasting clip them.
func (p *ImageProcessor) ValidateArea(area models.WatermarkArea) error {
	if area.Width() <= 0 || area.Height() <= 0 {
		return fmt.Errorf("%w: (%d, %d, %d, %d)", ErrInvalidArea, area.X1, area.Y1, area.X2, area.Y2)
	}
	return nil
}
