package views

// CSVSchema defines the column layout for each CSV product of a sequence
// export. This file is the single source of truth for column ordering.

// ExportKind identifies a CSV product for schema lookups.
type ExportKind int

const (
	// ExportIndex is the per-sequence index: one row per decoded spectrum.
	ExportIndex ExportKind = iota
	// ExportSpectrum is a per-spectrum sample dump with a raw pixel axis.
	ExportSpectrum
	// ExportSpectrumCalibrated adds the wavelength column produced by the
	// calibration table.
	ExportSpectrumCalibrated
)

var exportNames = map[ExportKind]string{
	ExportIndex:              "index",
	ExportSpectrum:           "spectrum",
	ExportSpectrumCalibrated: "spectrum-calibrated",
}

func (k ExportKind) String() string {
	if n, ok := exportNames[k]; ok {
		return n
	}
	return "unknown"
}

// SchemaColumns holds the canonical column list per export kind. The
// index columns past "number" mirror models.SpectrumRecord.CSVHeader();
// the export controller prepends the 1-based record number.
var SchemaColumns = map[ExportKind][]string{
	ExportIndex: {
		"number",
		"timestamp_ms", "radiometer", "optics",
		"exposure_ms", "pixel_count", "temperature_c",
		"accel_mean_x_g", "accel_mean_y_g", "accel_mean_z_g",
		"accel_std_x_g", "accel_std_y_g", "accel_std_z_g",
	},
	ExportSpectrum: {
		"pixel", "dn",
	},
	ExportSpectrumCalibrated: {
		"pixel", "wavelength_nm", "dn",
	},
}
