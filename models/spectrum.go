package models

// SpectrumHeader holds the fixed-layout metadata the instrument writes in
// front of every spectrum's sample body.
type SpectrumHeader struct {
	TimestampMs uint64       // acquisition time, ms since Unix epoch
	Type        SpectrumType // channel + entrance optics
	ExposureMs  uint32       // integration time in milliseconds
	PixelCount  uint16       // number of samples in the body
	Temperature float64      // detector temperature, °C
	Accel       AccelStats
}

// SpectrumRecord is one fully decoded spectrum: header plus raw
// digital-number samples, one per pixel in physical pixel order.
// After a successful decode len(Body) always equals Header.PixelCount.
type SpectrumRecord struct {
	Header SpectrumHeader
	Body   []uint16
}

func (SpectrumRecord) CSVHeader() []string {
	return []string{
		"timestamp_ms", "radiometer", "optics",
		"exposure_ms", "pixel_count", "temperature_c",
		"accel_mean_x_g", "accel_mean_y_g", "accel_mean_z_g",
		"accel_std_x_g", "accel_std_y_g", "accel_std_z_g",
	}
}

func (r *SpectrumRecord) CSVRow() []string {
	h := r.Header
	mx, sx := h.Accel.XG()
	my, sy := h.Accel.YG()
	mz, sz := h.Accel.ZG()
	return []string{
		utoa64(h.TimestampMs),
		h.Type.Radiometer.String(),
		h.Type.Optics.String(),
		itoa(int(h.ExposureMs)),
		itoa(int(h.PixelCount)),
		ftoa(h.Temperature, 2),
		ftoa(mx, 3), ftoa(my, 3), ftoa(mz, 3),
		ftoa(sx, 3), ftoa(sy, 3), ftoa(sz, 3),
	}
}
