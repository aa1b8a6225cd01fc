package controller

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"spectra-viewer/models"
	"spectra-viewer/services/decode"
	"spectra-viewer/utils"
)

// SequenceController turns one on-disk sequence file into an ordered list
// of decoded spectra (chunk order == acquisition order; no re-sorting).
//
// Error policy:
//   - Any chunk-splitting error fails the whole file: a corrupt file
//     yields zero records plus one descriptive error, never a partial
//     silent list.
//   - A record decode error follows the configured policy, "abort"
//     (default) or "skip". Skipping is safe because chunk boundaries come
//     from the splitter, independent of the bad record's body.
type SequenceController struct {
	skipBadRecords bool

	loaded  uint64
	skipped uint64
}

func NewSequenceController(cfg *utils.ViewerConfig) *SequenceController {
	return &SequenceController{
		skipBadRecords: cfg.Decode.OnRecordError == "skip",
	}
}

// Load reads and decodes the sequence file at path.
func (sc *SequenceController) Load(path string) ([]*models.SpectrumRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence: %w", err)
	}
	return sc.DecodeBuffer(path, raw)
}

// DecodeBuffer decodes an already-read sequence buffer. name is used only
// for error messages and logging.
func (sc *SequenceController) DecodeBuffer(name string, raw []byte) ([]*models.SpectrumRecord, error) {
	splitter := decode.NewSplitter(raw)
	var records []*models.SpectrumRecord

	for {
		chunk, err := splitter.Next()
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", name, err)
		}
		if chunk == nil {
			break
		}

		rec, err := decode.DecodeSpectrum(*chunk)
		if err != nil {
			if sc.skipBadRecords {
				atomic.AddUint64(&sc.skipped, 1)
				utils.L().Warn("skipping record in %s: %v", name, err)
				continue
			}
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		records = append(records, rec)
	}

	atomic.AddUint64(&sc.loaded, uint64(len(records)))
	utils.L().Info("loaded %s: %d spectra from %d bytes", name, len(records), len(raw))
	return records, nil
}

// Stats returns the running loaded/skipped record counters.
func (sc *SequenceController) Stats() (loaded, skipped uint64) {
	return atomic.LoadUint64(&sc.loaded), atomic.LoadUint64(&sc.skipped)
}

// LoadResult carries the outcome of an asynchronous load.
type LoadResult struct {
	Path    string
	Records []*models.SpectrumRecord
	Err     error
}

// LoadAsync decodes a sequence file on its own goroutine so a caller can
// stay responsive on large files. If ctx is cancelled before the result is
// consumed, the result is discarded; decoding itself is short and CPU
// bound and is not interrupted mid-file.
func (sc *SequenceController) LoadAsync(ctx context.Context, path string) <-chan LoadResult {
	out := make(chan LoadResult)
	go func() {
		defer close(out)
		records, err := sc.Load(path)
		select {
		case out <- LoadResult{Path: path, Records: records, Err: err}:
		case <-ctx.Done():
			utils.L().Debug("load of %s discarded: %v", path, ctx.Err())
		}
	}()
	return out
}
