package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"spectra-viewer/utils"
)

// SequenceScanner lists the sequence files of a capture folder. The
// instrument writes them as <folder>/RADIOMETER/*.spe; both the
// subdirectory and the filename pattern are configurable.
type SequenceScanner struct {
	subdir string
	glob   string
}

func NewSequenceScanner(cfg utils.ScanConfig) *SequenceScanner {
	subdir := cfg.Subdir
	glob := cfg.Glob
	if glob == "" {
		glob = "*.spe"
	}
	return &SequenceScanner{subdir: subdir, glob: glob}
}

// Scan returns the sequence file paths under dir, sorted by name so the
// listing matches acquisition order of the instrument's naming scheme.
func (s *SequenceScanner) Scan(dir string) ([]string, error) {
	root := dir
	if s.subdir != "" {
		root = filepath.Join(dir, s.subdir)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list sequences in %s: %w", root, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(s.glob, e.Name())
		if err != nil {
			return nil, fmt.Errorf("bad sequence pattern %q: %w", s.glob, err)
		}
		if ok {
			paths = append(paths, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
