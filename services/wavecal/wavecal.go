// Package wavecal maps detector pixel indices to physical wavelengths
// using per-channel calibration polynomials.
package wavecal

import (
	"fmt"

	"spectra-viewer/models"
)

// Degree of the pixel→wavelength polynomial. Every channel carries
// Degree+1 coefficients.
const Degree = 4

// Coefficients is one channel's polynomial in descending power order:
// c[0]·x⁴ + c[1]·x³ + c[2]·x² + c[3]·x + c[4], with x the 0-based pixel
// index and the result in nanometres.
type Coefficients [Degree + 1]float64

// UnavailableError reports a channel with no registered coefficients.
// Callers fall back to a raw pixel axis; coefficients of another channel
// are never substituted.
type UnavailableError struct {
	Channel models.Radiometer
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("no calibration coefficients for channel %s", e.Channel)
}

// Table holds the calibration polynomials, one per radiometer channel.
// Immutable after construction, so it is safe for concurrent use.
type Table struct {
	channels map[models.Radiometer]Coefficients
}

// NewTable builds a table from explicit per-channel coefficient vectors.
func NewTable(channels map[models.Radiometer]Coefficients) *Table {
	m := make(map[models.Radiometer]Coefficients, len(channels))
	for ch, c := range channels {
		m[ch] = c
	}
	return &Table{channels: m}
}

// NewTableFromConfig builds a table from the calibration file's
// name→coefficients form. Channel names must resolve and every vector
// must have exactly Degree+1 entries.
func NewTableFromConfig(channels map[string][]float64) (*Table, error) {
	m := make(map[models.Radiometer]Coefficients, len(channels))
	for name, vec := range channels {
		ch, ok := models.RadiometerByName(name)
		if !ok {
			return nil, fmt.Errorf("calibration: unknown channel %q", name)
		}
		if len(vec) != Degree+1 {
			return nil, fmt.Errorf("calibration: channel %s needs %d coefficients, got %d",
				name, Degree+1, len(vec))
		}
		var c Coefficients
		copy(c[:], vec)
		m[ch] = c
	}
	return &Table{channels: m}, nil
}

// Default returns the factory calibration shipped with the instrument.
// A calibration file overrides these per channel.
func Default() *Table {
	return NewTable(map[models.Radiometer]Coefficients{
		models.RadiometerVIS:  {-1.7e-11, 2.9e-8, -1.1e-5, 0.8032, 339.2},
		models.RadiometerSWIR: {2.4e-10, -9.6e-8, 3.9e-5, 3.1421, 898.7},
	})
}

// Wavelength maps one 0-based pixel index to nanometres for the given
// channel. Evaluation is double precision and unrounded.
func (t *Table) Wavelength(ch models.Radiometer, pixel int) (float64, error) {
	c, ok := t.channels[ch]
	if !ok {
		return 0, &UnavailableError{Channel: ch}
	}
	return horner(c, float64(pixel)), nil
}

// Axis evaluates the channel's polynomial over pixels 0..n-1, producing a
// full wavelength x-axis for a spectrum of n samples.
func (t *Table) Axis(ch models.Radiometer, n int) ([]float64, error) {
	c, ok := t.channels[ch]
	if !ok {
		return nil, &UnavailableError{Channel: ch}
	}
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = horner(c, float64(i))
	}
	return axis, nil
}

// Has reports whether the channel is calibrated.
func (t *Table) Has(ch models.Radiometer) bool {
	_, ok := t.channels[ch]
	return ok
}

func horner(c Coefficients, x float64) float64 {
	y := c[0]
	for _, k := range c[1:] {
		y = y*x + k
	}
	return y
}
