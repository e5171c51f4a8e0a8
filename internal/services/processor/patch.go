package processor

import "github.com/phambaophuc/watermark-cleaner/internal/models"

// patchAreas picks the two source rectangles for an area in an image of the
// given width. Near the left edge the left source is taken from the right
// instead, and near the right edge the right source is taken from the left.
// On images narrower than twice the area width the sources may overlap each
// other or the area, or extend past the image.
func patchAreas(area models.WatermarkArea, imageWidth int) (left, right models.WatermarkArea) {
	patchWidth := area.Width()

	if area.X1 < patchWidth {
		left = area.Shift(patchWidth)
	} else {
		left = area.Shift(-patchWidth)
	}

	if area.X2 > imageWidth-patchWidth {
		right = area.Shift(-patchWidth)
	} else {
		right = models.WatermarkArea{
			X1: imageWidth - patchWidth,
			Y1: area.Y1,
			X2: imageWidth,
			Y2: area.Y2,
		}
	}

	return left, right
}
