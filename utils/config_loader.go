package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Viewer config ──────────────────────────────────────────────────────

// ScanConfig controls how capture folders are searched for sequence files.
type ScanConfig struct {
	Subdir string `yaml:"subdir"` // subdirectory holding sequences, e.g. RADIOMETER
	Glob   string `yaml:"glob"`   // filename pattern, e.g. *.spe
}

// DecodeConfig controls the per-record error policy. Chunk-splitting
// errors always fail the whole file regardless of this setting.
type DecodeConfig struct {
	// OnRecordError is "abort" (default: a bad record fails the file) or
	// "skip" (log the record and continue; chunk boundaries come from the
	// splitter and stay trustworthy past a bad record body).
	OnRecordError string `yaml:"on_record_error"`
}

type CSVExportConfig struct {
	BufferSizeKB int  `yaml:"buffer_size_kb"`
	WriteHeader  bool `yaml:"write_header"`
}

type ExportConfig struct {
	BaseDir        string          `yaml:"base_dir"`
	WavelengthAxis bool            `yaml:"wavelength_axis"` // add calibrated x-axis column
	CSV            CSVExportConfig `yaml:"csv"`
}

// ViewerConfig is the top-level structure for viewer.yaml.
type ViewerConfig struct {
	Scan   ScanConfig   `yaml:"scan"`
	Decode DecodeConfig `yaml:"decode"`
	Export ExportConfig `yaml:"export"`
}

// DefaultViewerConfig returns the configuration used when no viewer.yaml
// is given: instrument-standard folder layout, fail-fast decoding,
// calibrated CSV export into ./export.
func DefaultViewerConfig() *ViewerConfig {
	return &ViewerConfig{
		Scan:   ScanConfig{Subdir: "RADIOMETER", Glob: "*.spe"},
		Decode: DecodeConfig{OnRecordError: "abort"},
		Export: ExportConfig{
			BaseDir:        "export",
			WavelengthAxis: true,
			CSV:            CSVExportConfig{BufferSizeKB: 64, WriteHeader: true},
		},
	}
}

// LoadViewerConfig reads and parses viewer.yaml, filling unset fields
// from the defaults.
func LoadViewerConfig(path string) (*ViewerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read viewer config: %w", err)
	}
	cfg := DefaultViewerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse viewer config: %w", err)
	}
	switch cfg.Decode.OnRecordError {
	case "", "abort":
		cfg.Decode.OnRecordError = "abort"
	case "skip":
	default:
		return nil, fmt.Errorf("viewer config: on_record_error must be abort or skip, got %q",
			cfg.Decode.OnRecordError)
	}
	return cfg, nil
}

// ─── Calibration config ─────────────────────────────────────────────────

// CalibrationConfig is the top-level structure for calibration.yaml.
// Coefficients are listed per channel name in descending power order.
type CalibrationConfig struct {
	Calibration struct {
		Channels map[string][]float64 `yaml:"channels"`
	} `yaml:"calibration"`
}

// LoadCalibrationConfig reads and parses calibration.yaml. Validation of
// channel names and vector lengths happens when the wavelength table is
// built from the returned map.
func LoadCalibrationConfig(path string) (*CalibrationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calibration config: %w", err)
	}
	var cfg CalibrationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse calibration config: %w", err)
	}
	if len(cfg.Calibration.Channels) == 0 {
		return nil, fmt.Errorf("calibration config %s: no channels defined", path)
	}
	return &cfg, nil
}
