package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithNoConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesBatchSizes(t *testing.T) {
	dir := t.TempDir()
	content := "version: 1\nscanBatchSize: 5\nextractBatchSize: 12\nignoreDirs:\n  - vendor\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projectmap.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ScanBatchSize)
	assert.Equal(t, 12, cfg.ExtractBatchSize)
	assert.Equal(t, defaultMemoryWarnMB, cfg.MemoryWarnMB)
	assert.Equal(t, []string{"vendor"}, cfg.ExtraIgnoreDirs)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projectmap.yml"), []byte("version: 7\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsNegativeBatchSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projectmap.yml"), []byte("scanBatchSize: -1\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadFallsBackToYamlExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".projectmap.yaml"), []byte("extractBatchSize: 30\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.ExtractBatchSize)
}
