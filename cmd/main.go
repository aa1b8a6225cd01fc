package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"spectra-viewer/controller"
	"spectra-viewer/services/ingest"
	"spectra-viewer/services/wavecal"
	"spectra-viewer/utils"
	"spectra-viewer/views"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "path to viewer.yaml (built-in defaults when empty)")
	calPath := flag.String("cal", "", "path to calibration.yaml (factory calibration when empty)")
	dirPath := flag.String("dir", "", "capture folder to scan for sequence files")
	seqPath := flag.String("seq", "", "sequence file to decode")
	spectrumN := flag.Int("spectrum", 0, "print the full header of spectrum N (1-based)")
	doExport := flag.Bool("export", false, "write the CSV export for the decoded sequence")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.INFO, *logFile)
	defer logger.Close()

	utils.L().Info("═══════════════════════════════════════════════════")
	utils.L().Info("  Spectra-Viewer  ·  Radiometer Sequence Inspector")
	utils.L().Info("═══════════════════════════════════════════════════")

	// ── Configs ──────────────────────────────────────────────────────
	cfg := utils.DefaultViewerConfig()
	if *configPath != "" {
		var err error
		cfg, err = utils.LoadViewerConfig(*configPath)
		if err != nil {
			utils.L().Fatal("load viewer config: %v", err)
		}
	}

	table := wavecal.Default()
	if *calPath != "" {
		calCfg, err := utils.LoadCalibrationConfig(*calPath)
		if err != nil {
			utils.L().Fatal("load calibration: %v", err)
		}
		table, err = wavecal.NewTableFromConfig(calCfg.Calibration.Channels)
		if err != nil {
			utils.L().Fatal("build calibration table: %v", err)
		}
		utils.L().Info("calibration loaded from %s", *calPath)
	}

	// ── Context with OS signal cancellation ──────────────────────────
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Folder scan ──────────────────────────────────────────────────
	if *dirPath != "" {
		scanner := ingest.NewSequenceScanner(cfg.Scan)
		paths, err := scanner.Scan(*dirPath)
		if err != nil {
			utils.L().Fatal("scan %s: %v", *dirPath, err)
		}
		utils.L().Info("found %d sequence files in %s", len(paths), *dirPath)
		for _, p := range paths {
			fmt.Println(filepath.Base(p))
		}
	}

	if *seqPath == "" {
		if *dirPath == "" {
			flag.Usage()
			os.Exit(2)
		}
		return
	}

	// ── Decode one sequence ──────────────────────────────────────────
	seqCtrl := controller.NewSequenceController(cfg)

	res, ok := <-seqCtrl.LoadAsync(ctx, *seqPath)
	if !ok {
		utils.L().Fatal("load of %s cancelled", *seqPath)
	}
	if res.Err != nil {
		utils.L().Fatal("%v", res.Err)
	}

	for i, rec := range res.Records {
		fmt.Println(views.ListLine(i+1, rec))
	}

	if *spectrumN > 0 {
		if *spectrumN > len(res.Records) {
			utils.L().Fatal("sequence has %d spectra, no spectrum %d", len(res.Records), *spectrumN)
		}
		rec := res.Records[*spectrumN-1]
		fmt.Println()
		fmt.Println(views.TitleLine(rec))
		fmt.Print(views.DetailBlock(rec))
	}

	if *doExport {
		exportCtrl := controller.NewExportController(cfg, table)
		dir, err := exportCtrl.ExportSequence(*seqPath, res.Records)
		if err != nil {
			utils.L().Fatal("export: %v", err)
		}
		fmt.Println("\n✓ export written to:", dir)
	}
}
