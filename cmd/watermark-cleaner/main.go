package main

import (
	"log"

	"github.com/phambaophuc/watermark-cleaner/internal/config"
	"github.com/phambaophuc/watermark-cleaner/internal/services/batch"
	"github.com/phambaophuc/watermark-cleaner/internal/services/processor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "watermark-cleaner",
		Short: "Patch over the bottom-left watermark of every image in a folder",
		Long: `Covers a fixed bottom-left region of each jpg/jpeg/png image in the input
folder with pixels taken from beside it, blurs the result and writes it to
the output folder as cleaned_<name>.

Folders are read from INPUT_FOLDER and OUTPUT_FOLDER (a .env file is loaded
if present).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	runner := batch.NewRunner(cfg, processor.NewImageProcessor(), logger)

	summary, err := runner.Run()
	if err != nil {
		logger.Error("Batch failed", zap.Error(err))
		return err
	}

	logger.Info("Batch finished",
		zap.String("run_id", summary.RunID),
		zap.Int("matched", summary.Matched),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed))

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = atomicLevel
	return zapCfg.Build()
}
