package models

// accelScaleG converts the accelerometer's raw 16-bit counts to g-force:
// full scale ±19.6 g over the signed 16-bit range.
const accelScaleG = 19.6 / 32768.0

// RawToG converts one raw accelerometer count to g.
func RawToG(v int16) float64 {
	return float64(v) * accelScaleG
}

// AccelStats holds the per-spectrum accelerometer summary the instrument
// records during exposure: mean and standard deviation per axis, in raw
// counts. Values convert to g via RawToG.
type AccelStats struct {
	MeanX, MeanY, MeanZ int16
	StdX, StdY, StdZ    int16
}

// XG returns the X-axis mean and standard deviation in g.
func (a AccelStats) XG() (mean, std float64) {
	return RawToG(a.MeanX), RawToG(a.StdX)
}

// YG returns the Y-axis mean and standard deviation in g.
func (a AccelStats) YG() (mean, std float64) {
	return RawToG(a.MeanY), RawToG(a.StdY)
}

// ZG returns the Z-axis mean and standard deviation in g.
func (a AccelStats) ZG() (mean, std float64) {
	return RawToG(a.MeanZ), RawToG(a.StdZ)
}
