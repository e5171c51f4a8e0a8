package processor

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/watermark-cleaner/internal/models"
)

const DefaultQuality = 75

type ImageProcessor struct {
	blurSigma float64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{blurSigma: models.BlurSigma}
}

// RemoveWatermark covers area with patches taken from beside it, blurs the
// whole image and writes the result to outputPath.
func (p *ImageProcessor) RemoveWatermark(imagePath, outputPath string, area models.WatermarkArea) error {
	if err := p.ValidateArea(area); err != nil {
		return err
	}

	img, err := imaging.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	cleaned := p.applyPatches(imaging.Clone(img), area)
	cleaned = p.blurImage(cleaned)

	if err := p.saveImage(cleaned, outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// applyPatches crops both sources from base before pasting anything, so the
// right patch never picks up pixels written by the left one.
func (p *ImageProcessor) applyPatches(base *image.NRGBA, area models.WatermarkArea) *image.NRGBA {
	width, height := area.Width(), area.Height()
	leftArea, rightArea := patchAreas(area, base.Bounds().Dx())

	leftPatch := p.resizeImage(p.cropImage(base, leftArea), width, height)
	rightPatch := p.resizeImage(p.cropImage(base, rightArea), width, height)

	result := imaging.Paste(base, leftPatch, image.Pt(area.X1, area.Y1))
	return imaging.Paste(result, rightPatch, image.Pt(area.X1+width, area.Y1))
}

// ImageSize reads only the image header.
func (p *ImageProcessor) ImageSize(imagePath string) (int, int, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header: %w", err)
	}

	return cfg.Width, cfg.Height, nil
}
