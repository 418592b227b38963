package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankparse/statement-extract/internal/config"
	"bankparse/statement-extract/internal/logging"
)

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	return cfg
}

func TestBuildExtractorDefaults(t *testing.T) {
	ext, err := BuildExtractor(baseConfig(), logging.NewMockLogger())
	require.NoError(t, err)
	assert.NotNil(t, ext)
}

func TestBuildExtractorWithPhraseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phrases:\n  - \"NOISE\"\n"), 0600))

	cfg := baseConfig()
	cfg.Cleaner.PhraseFile = path

	ext, err := BuildExtractor(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	assert.NotNil(t, ext)
}

func TestBuildExtractorMissingPhraseFile(t *testing.T) {
	cfg := baseConfig()
	cfg.Cleaner.PhraseFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := BuildExtractor(cfg, logging.NewMockLogger())
	assert.Error(t, err)
}
