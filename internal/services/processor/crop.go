package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/watermark-cleaner/internal/models"
)

// cropImage always returns an image the size of area. Pixels outside img are
// zero in every channel: black for opaque images, transparent otherwise.
func (p *ImageProcessor) cropImage(img image.Image, area models.WatermarkArea) *image.NRGBA {
	rect := area.Rect()
	patch := imaging.New(rect.Dx(), rect.Dy(), fillColor(img))

	visible := rect.Intersect(img.Bounds())
	if visible.Empty() {
		return patch
	}

	return imaging.Paste(patch, imaging.Crop(img, visible), visible.Min.Sub(rect.Min))
}

func fillColor(img image.Image) color.NRGBA {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{}
}
