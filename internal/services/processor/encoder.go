package processor

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const OutputFileMode os.FileMode = 0644

// saveImage encodes into a temp file next to outputPath and renames it into
// place, so a failed write leaves no partial output behind.
func (p *ImageProcessor) saveImage(img image.Image, outputPath string) error {
	format, err := imaging.FormatFromFilename(outputPath)
	if err != nil {
		return fmt.Errorf("failed to determine output format for %s: %w", outputPath, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outputPath), ".cleaned-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
	}()

	if err := imaging.Encode(tmpFile, img, format, imaging.JPEGQuality(DefaultQuality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	// CreateTemp makes the file 0600 and Rename keeps that mode.
	if err := tmpFile.Chmod(OutputFileMode); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), outputPath); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
