package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"spectra-viewer/models"
	"spectra-viewer/services/wavecal"
	"spectra-viewer/utils"
	"spectra-viewer/views"
)

// ExportController writes a loaded sequence to CSV:
//   - index.csv          one row per decoded spectrum
//   - spectrum_NNN.csv   the sample body of record NNN, with a wavelength
//     column when the channel is calibrated
//
// A channel without calibration degrades that record to a raw pixel axis;
// another channel's coefficients are never substituted.
type ExportController struct {
	cfg   *utils.ViewerConfig
	table *wavecal.Table

	warned map[models.Radiometer]bool
}

func NewExportController(cfg *utils.ViewerConfig, table *wavecal.Table) *ExportController {
	return &ExportController{
		cfg:    cfg,
		table:  table,
		warned: make(map[models.Radiometer]bool),
	}
}

// ExportSequence writes all CSV products for one sequence under
// <export.base_dir>/<sequence file stem>/ and returns that directory.
func (ec *ExportController) ExportSequence(seqPath string, records []*models.SpectrumRecord) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(seqPath), filepath.Ext(seqPath))
	dir := filepath.Join(ec.cfg.Export.BaseDir, stem)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	if err := ec.writeIndex(dir, records); err != nil {
		return "", err
	}
	for i, rec := range records {
		if err := ec.writeSpectrum(dir, i+1, rec); err != nil {
			return "", err
		}
	}

	utils.L().Info("exported %d spectra to %s", len(records), dir)
	return dir, nil
}

func (ec *ExportController) writeIndex(dir string, records []*models.SpectrumRecord) error {
	csvCfg := ec.cfg.Export.CSV
	w, err := views.NewCSVWriter(
		filepath.Join(dir, "index.csv"), csvCfg.BufferSizeKB*1024, csvCfg.WriteHeader,
		views.SchemaColumns[views.ExportIndex],
	)
	if err != nil {
		return err
	}
	for i, rec := range records {
		w.WriteRow(append([]string{strconv.Itoa(i + 1)}, rec.CSVRow()...))
	}
	return w.Close()
}

func (ec *ExportController) writeSpectrum(dir string, number int, rec *models.SpectrumRecord) error {
	axis := ec.wavelengthAxis(rec)

	kind := views.ExportSpectrum
	if axis != nil {
		kind = views.ExportSpectrumCalibrated
	}

	csvCfg := ec.cfg.Export.CSV
	name := fmt.Sprintf("spectrum_%03d.csv", number)
	w, err := views.NewCSVWriter(
		filepath.Join(dir, name), csvCfg.BufferSizeKB*1024, csvCfg.WriteHeader,
		views.SchemaColumns[kind],
	)
	if err != nil {
		return err
	}
	for i, dn := range rec.Body {
		row := make([]string, 0, 3)
		row = append(row, strconv.Itoa(i))
		if axis != nil {
			row = append(row, strconv.FormatFloat(axis[i], 'f', 4, 64))
		}
		row = append(row, strconv.Itoa(int(dn)))
		w.WriteRow(row)
	}
	return w.Close()
}

// wavelengthAxis returns the calibrated x-axis for a record, or nil when
// the axis is disabled or the channel has no coefficients.
func (ec *ExportController) wavelengthAxis(rec *models.SpectrumRecord) []float64 {
	if !ec.cfg.Export.WavelengthAxis || ec.table == nil {
		return nil
	}
	ch := rec.Header.Type.Radiometer
	axis, err := ec.table.Axis(ch, int(rec.Header.PixelCount))
	if err != nil {
		var unavail *wavecal.UnavailableError
		if errors.As(err, &unavail) && !ec.warned[ch] {
			ec.warned[ch] = true
			utils.L().Warn("channel %s has no calibration, exporting raw pixel axis", ch)
		}
		return nil
	}
	return axis
}
