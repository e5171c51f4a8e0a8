package processor

import (
	"image"

	"golang.org/x/image/draw"
)

// resizeImage scales img to width x height with Catmull-Rom (bicubic) resampling
func (p *ImageProcessor) resizeImage(img image.Image, width, height int) *image.NRGBA {
	resized := image.NewNRGBA(image.Rect(0, 0, max(1, width), max(1, height)))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)
	return resized
}
