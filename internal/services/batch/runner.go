package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phambaophuc/watermark-cleaner/internal/models"
	"github.com/phambaophuc/watermark-cleaner/pkg/utils"
	"go.uber.org/zap"
)

// Run cleans every matching file in the input folder, one at a time. A file
// that fails is logged and skipped; only folder-level failures are returned.
func (r *Runner) Run() (*models.BatchSummary, error) {
	summary := &models.BatchSummary{RunID: utils.GenerateRunID()}
	logger := r.logger.With(zap.String("run_id", summary.RunID))

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	entries, err := os.ReadDir(r.inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !utils.IsSupportedImageName(entry.Name()) {
			continue
		}
		summary.Matched++

		outputPath, err := r.processFile(entry.Name())
		if err != nil {
			summary.Failed++
			logger.Error("An error occurred",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}

		summary.Processed++
		summary.Outputs = append(summary.Outputs, outputPath)
		logger.Info("Watermark removed and image saved", zap.String("output", outputPath))
	}

	if summary.Matched == 0 {
		logger.Info("No images found in the input folder.", zap.String("input", r.inputDir))
	}

	return summary, nil
}

func (r *Runner) processFile(name string) (string, error) {
	imagePath := filepath.Join(r.inputDir, name)

	_, height, err := r.remover.ImageSize(imagePath)
	if err != nil {
		return "", err
	}

	area := models.BottomLeftArea(height)
	outputPath := filepath.Join(r.outputDir, utils.OutputFilename(name))

	if err := r.remover.RemoveWatermark(imagePath, outputPath, area); err != nil {
		return "", err
	}

	return outputPath, nil
}
