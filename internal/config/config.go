// Package config handles .projectmap.yml project-level configuration,
// following the optional-file-with-silent-default pattern of the teacher's
// own .arsrc.yml loader.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultScanBatchSize and defaultExtractBatchSize are the spec-mandated
// fan-out widths (§4.3, §4.9) used when a project config doesn't override
// them.
const (
	defaultScanBatchSize    = 10
	defaultExtractBatchSize = 20
	defaultMemoryWarnMB     = 500
)

// EngineConfig is the resolved configuration an analysis run executes
// with: either the hard-coded defaults, or those defaults overridden by a
// discovered .projectmap.yml.
type EngineConfig struct {
	ScanBatchSize    int
	ExtractBatchSize int
	MemoryWarnMB     int
	ExtraIgnoreDirs  []string
}

// Default returns the spec-mandated engine defaults.
func Default() EngineConfig {
	return EngineConfig{
		ScanBatchSize:    defaultScanBatchSize,
		ExtractBatchSize: defaultExtractBatchSize,
		MemoryWarnMB:     defaultMemoryWarnMB,
	}
}

// projectFile mirrors the on-disk .projectmap.yml shape.
type projectFile struct {
	Version          int      `yaml:"version"`
	ScanBatchSize    int      `yaml:"scanBatchSize"`
	ExtractBatchSize int      `yaml:"extractBatchSize"`
	MemoryWarnMB     int      `yaml:"memoryWarnMB"`
	IgnoreDirs       []string `yaml:"ignoreDirs"`
}

// Load looks for .projectmap.yml (then .projectmap.yaml) in dir and, if
// found, overrides the engine defaults with its values. A missing file is
// not an error: Load returns the unmodified defaults. A malformed file is
// an error.
func Load(dir string) (EngineConfig, error) {
	cfg := Default()

	path := filepath.Join(dir, ".projectmap.yml")
	if _, err := os.Stat(path); err != nil {
		alt := filepath.Join(dir, ".projectmap.yaml")
		if _, err := os.Stat(alt); err != nil {
			return cfg, nil
		}
		path = alt
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read project config %s: %w", path, err)
	}

	var pf projectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return cfg, fmt.Errorf("parse project config %s: %w", path, err)
	}

	if err := validate(pf); err != nil {
		return cfg, fmt.Errorf("invalid project config %s: %w", path, err)
	}

	applyOverrides(&cfg, pf)
	return cfg, nil
}

func validate(pf projectFile) error {
	if pf.Version != 0 && pf.Version != 1 {
		return fmt.Errorf("unsupported config version %d (expected 1)", pf.Version)
	}
	if pf.ScanBatchSize < 0 {
		return fmt.Errorf("scanBatchSize must be >= 0, got %d", pf.ScanBatchSize)
	}
	if pf.ExtractBatchSize < 0 {
		return fmt.Errorf("extractBatchSize must be >= 0, got %d", pf.ExtractBatchSize)
	}
	if pf.MemoryWarnMB < 0 {
		return fmt.Errorf("memoryWarnMB must be >= 0, got %d", pf.MemoryWarnMB)
	}
	return nil
}

func applyOverrides(cfg *EngineConfig, pf projectFile) {
	if pf.ScanBatchSize > 0 {
		cfg.ScanBatchSize = pf.ScanBatchSize
	}
	if pf.ExtractBatchSize > 0 {
		cfg.ExtractBatchSize = pf.ExtractBatchSize
	}
	if pf.MemoryWarnMB > 0 {
		cfg.MemoryWarnMB = pf.MemoryWarnMB
	}
	if len(pf.IgnoreDirs) > 0 {
		cfg.ExtraIgnoreDirs = pf.IgnoreDirs
	}
}
