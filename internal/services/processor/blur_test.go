package processor

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestBlurImage(t *testing.T) {
	p := NewImageProcessor()

	img := imaging.New(60, 40, red)
	img = imaging.Paste(img, imaging.New(30, 40, blue), image.Pt(30, 0))

	blurred := p.blurImage(img)

	assert.Equal(t, img.Bounds(), blurred.Bounds())

	// uniform regions far from the seam keep their colour
	assertColorNear(t, red, blurred.At(5, 20))
	assertColorNear(t, blue, blurred.At(55, 20))

	// both columns next to the seam are mixed
	assertMixed(t, blurred.At(29, 20))
	assertMixed(t, blurred.At(30, 20))
	assert.NotEqual(t, img.NRGBAAt(30, 20), blurred.NRGBAAt(30, 20))
}
