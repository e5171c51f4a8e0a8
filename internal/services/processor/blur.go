package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

func (p *ImageProcessor) blurImage(img image.Image) *image.NRGBA {
	return imaging.Blur(img, p.blurSigma)
}
