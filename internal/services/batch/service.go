package batch

import (
	"github.com/phambaophuc/watermark-cleaner/internal/config"
	"github.com/phambaophuc/watermark-cleaner/internal/models"
	"go.uber.org/zap"
)

// WatermarkRemover is the per-image work the runner drives.
type WatermarkRemover interface {
	ImageSize(imagePath string) (int, int, error)
	RemoveWatermark(imagePath, outputPath string, area models.WatermarkArea) error
}

type Runner struct {
	inputDir  string
	outputDir string
	remover   WatermarkRemover
	logger    *zap.Logger
}

func NewRunner(cfg *config.Config, remover WatermarkRemover, logger *zap.Logger) *Runner {
	return &Runner{
		inputDir:  cfg.Folders.Input,
		outputDir: cfg.Folders.Output,
		remover:   remover,
		logger:    logger,
	}
}
