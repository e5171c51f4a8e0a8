package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("INPUT_FOLDER", "")
		t.Setenv("OUTPUT_FOLDER", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/storage/emulated/0/input", cfg.Folders.Input)
		assert.Equal(t, "/storage/emulated/0/output", cfg.Folders.Output)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("INPUT_FOLDER", "/tmp/in")
		t.Setenv("OUTPUT_FOLDER", "/tmp/out")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/in", cfg.Folders.Input)
		assert.Equal(t, "/tmp/out", cfg.Folders.Output)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
