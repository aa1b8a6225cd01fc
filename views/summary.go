package views

import (
	"fmt"
	"strings"

	"spectra-viewer/models"
	"spectra-viewer/utils"
)

// Text rendering of decoded spectra, matching the line formats the
// instrument's operators are used to reading.

// ListLine renders one entry of a sequence listing:
//
//	<n>-<timestamp_ms>-<radiometer>-<optics>
func ListLine(n int, rec *models.SpectrumRecord) string {
	h := rec.Header
	return fmt.Sprintf("%d-%d-%s-%s", n, h.TimestampMs, h.Type.Radiometer, h.Type.Optics)
}

// TitleLine renders the one-line measurement summary used as a graph
// title, e.g. "VIS COSINE, 120ms, 23.45 °C".
func TitleLine(rec *models.SpectrumRecord) string {
	h := rec.Header
	return fmt.Sprintf("%s, %dms, %.2f °C", h.Type, h.ExposureMs, h.Temperature)
}

// DetailBlock renders the full header of one spectrum as a multi-line
// block: timestamp, channel, optics, exposure, pixel count, temperature
// and the per-axis acceleration as mean ±std in g.
func DetailBlock(rec *models.SpectrumRecord) string {
	h := rec.Header
	mx, sx := h.Accel.XG()
	my, sy := h.Accel.YG()
	mz, sz := h.Accel.ZG()

	var b strings.Builder
	fmt.Fprintf(&b, "timestamp:    %s\n", utils.FormatTimestampMs(h.TimestampMs))
	fmt.Fprintf(&b, "radiometer:   %s\n", h.Type.Radiometer)
	fmt.Fprintf(&b, "entrance:     %s\n", h.Type.Optics)
	fmt.Fprintf(&b, "exposure:     %d ms\n", h.ExposureMs)
	fmt.Fprintf(&b, "pixel count:  %d\n", h.PixelCount)
	fmt.Fprintf(&b, "temperature:  %.2f °C\n", h.Temperature)
	fmt.Fprintf(&b, "accel x:      %.2f ±%.2f g\n", mx, sx)
	fmt.Fprintf(&b, "accel y:      %.2f ±%.2f g\n", my, sy)
	fmt.Fprintf(&b, "accel z:      %.2f ±%.2f g\n", mz, sz)
	return b.String()
}
