package models

import "fmt"

// Radiometer identifies the spectral channel that produced a spectrum.
// The numeric value is the wire code as written by the instrument, so an
// unrecognized code survives decoding and can be reported verbatim.
type Radiometer uint16

const (
	RadiometerVIS  Radiometer = 0 // silicon detector, visible range
	RadiometerSWIR Radiometer = 1 // InGaAs detector, short-wave infrared
)

var radiometerNames = map[Radiometer]string{
	RadiometerVIS:  "VIS",
	RadiometerSWIR: "SWIR",
}

// Known reports whether the channel code is one the instrument documents.
func (r Radiometer) Known() bool {
	_, ok := radiometerNames[r]
	return ok
}

func (r Radiometer) String() string {
	if n, ok := radiometerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(r))
}

// RadiometerByName resolves a display name (as used in calibration files)
// back to its channel.
func RadiometerByName(name string) (Radiometer, bool) {
	for r, n := range radiometerNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// Optics identifies the entrance fore-optics a spectrum was taken through.
// Like Radiometer, the value is the raw wire code.
type Optics uint16

const (
	OpticsDirect Optics = 0 // bare entrance slit
	OpticsCosine Optics = 1 // cosine-corrected diffuser
)

var opticsNames = map[Optics]string{
	OpticsDirect: "DIRECT",
	OpticsCosine: "COSINE",
}

// Known reports whether the optics code is documented.
func (o Optics) Known() bool {
	_, ok := opticsNames[o]
	return ok
}

func (o Optics) String() string {
	if n, ok := opticsNames[o]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(o))
}

// SpectrumType is the composite measurement kind: which channel recorded
// the spectrum and through which entrance optics.
type SpectrumType struct {
	Radiometer Radiometer
	Optics     Optics
}

func (t SpectrumType) String() string {
	return t.Radiometer.String() + " " + t.Optics.String()
}
