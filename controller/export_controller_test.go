package controller

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"spectra-viewer/models"
	"spectra-viewer/services/wavecal"
	"spectra-viewer/utils"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func exportConfig(t *testing.T) *utils.ViewerConfig {
	cfg := utils.DefaultViewerConfig()
	cfg.Export.BaseDir = t.TempDir()
	return cfg
}

func TestExportSequenceWritesIndexAndSpectra(t *testing.T) {
	records := []*models.SpectrumRecord{
		testRecord(1000, []uint16{10, 20}),
		testRecord(2000, []uint16{30}),
	}

	ec := NewExportController(exportConfig(t), wavecal.Default())
	dir, err := ec.ExportSequence("/data/RADIOMETER/SEQ_0042.spe", records)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(dir) != "SEQ_0042" {
		t.Fatalf("export dir %q not named after the sequence", dir)
	}

	index := readCSV(t, filepath.Join(dir, "index.csv"))
	if len(index) != 3 { // header + 2 records
		t.Fatalf("index.csv has %d rows", len(index))
	}
	if index[1][0] != "1" || index[2][0] != "2" {
		t.Fatalf("index numbering wrong: %v, %v", index[1][0], index[2][0])
	}

	// SWIR is calibrated by default, so sample files carry the
	// wavelength column
	spec := readCSV(t, filepath.Join(dir, "spectrum_001.csv"))
	if len(spec) != 3 { // header + 2 pixels
		t.Fatalf("spectrum_001.csv has %d rows", len(spec))
	}
	if len(spec[0]) != 3 || spec[0][1] != "wavelength_nm" {
		t.Fatalf("expected calibrated schema, got header %v", spec[0])
	}
	if spec[1][0] != "0" || spec[1][2] != "10" {
		t.Fatalf("bad first sample row: %v", spec[1])
	}
}

func TestExportFallsBackToPixelAxis(t *testing.T) {
	// table without SWIR: the record's channel is uncalibrated
	table := wavecal.NewTable(map[models.Radiometer]wavecal.Coefficients{
		models.RadiometerVIS: {0, 0, 0, 1, 0},
	})

	ec := NewExportController(exportConfig(t), table)
	dir, err := ec.ExportSequence("seq.spe", []*models.SpectrumRecord{
		testRecord(1000, []uint16{10, 20}),
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	spec := readCSV(t, filepath.Join(dir, "spectrum_001.csv"))
	if len(spec[0]) != 2 || spec[0][0] != "pixel" || spec[0][1] != "dn" {
		t.Fatalf("expected raw pixel schema, got header %v", spec[0])
	}
}

func TestExportWithoutWavelengthAxis(t *testing.T) {
	cfg := exportConfig(t)
	cfg.Export.WavelengthAxis = false

	ec := NewExportController(cfg, wavecal.Default())
	dir, err := ec.ExportSequence("seq.spe", []*models.SpectrumRecord{
		testRecord(1000, []uint16{7}),
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	spec := readCSV(t, filepath.Join(dir, "spectrum_001.csv"))
	if len(spec[0]) != 2 {
		t.Fatalf("axis disabled but header is %v", spec[0])
	}
}
