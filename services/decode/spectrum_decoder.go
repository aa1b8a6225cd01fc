package decode

import (
	"encoding/binary"
	"math"

	"spectra-viewer/models"
)

// Wire layout of one chunk, little endian throughout. Offsets are relative
// to the chunk start and include the 2-byte length prefix.
const (
	offTimestamp   = 2  // uint64, ms since Unix epoch
	offRadiometer  = 10 // uint16 channel code
	offOptics      = 12 // uint16 entrance-optics code
	offExposure    = 14 // uint32, ms
	offPixelCount  = 18 // uint16
	offTemperature = 20 // float64, °C
	offAccel       = 28 // 6×int16: mean x,y,z then std x,y,z

	// HeaderSize is the fixed part of every chunk, length prefix included.
	// The sample body follows immediately after.
	HeaderSize = 40
)

// DecodeSpectrum decodes one chunk into a SpectrumRecord. The chunk must
// contain the fixed header plus exactly the samples its pixel count
// declares; trailing slack inside the chunk is tolerated but the body is
// always pixel-count sized.
func DecodeSpectrum(c Chunk) (*models.SpectrumRecord, error) {
	b := c.Data
	if len(b) < HeaderSize {
		return nil, &InsufficientBytesError{Offset: c.Offset, Expected: HeaderSize, Actual: len(b)}
	}

	radCode := binary.LittleEndian.Uint16(b[offRadiometer:])
	rad := models.Radiometer(radCode)
	if !rad.Known() {
		return nil, &UnknownEnumValueError{Offset: c.Offset, Field: "radiometer", Code: radCode}
	}
	optCode := binary.LittleEndian.Uint16(b[offOptics:])
	opt := models.Optics(optCode)
	if !opt.Known() {
		return nil, &UnknownEnumValueError{Offset: c.Offset, Field: "optics", Code: optCode}
	}

	pixels := int(binary.LittleEndian.Uint16(b[offPixelCount:]))
	if want := HeaderSize + 2*pixels; len(b) < want {
		return nil, &InsufficientBytesError{Offset: c.Offset, Expected: want, Actual: len(b)}
	}

	header := models.SpectrumHeader{
		TimestampMs: binary.LittleEndian.Uint64(b[offTimestamp:]),
		Type:        models.SpectrumType{Radiometer: rad, Optics: opt},
		ExposureMs:  binary.LittleEndian.Uint32(b[offExposure:]),
		PixelCount:  uint16(pixels),
		Temperature: math.Float64frombits(binary.LittleEndian.Uint64(b[offTemperature:])),
		Accel: models.AccelStats{
			MeanX: int16(binary.LittleEndian.Uint16(b[offAccel+0:])),
			MeanY: int16(binary.LittleEndian.Uint16(b[offAccel+2:])),
			MeanZ: int16(binary.LittleEndian.Uint16(b[offAccel+4:])),
			StdX:  int16(binary.LittleEndian.Uint16(b[offAccel+6:])),
			StdY:  int16(binary.LittleEndian.Uint16(b[offAccel+8:])),
			StdZ:  int16(binary.LittleEndian.Uint16(b[offAccel+10:])),
		},
	}

	body := make([]uint16, pixels)
	for i := range body {
		body[i] = binary.LittleEndian.Uint16(b[HeaderSize+2*i:])
	}

	return &models.SpectrumRecord{Header: header, Body: body}, nil
}

// EncodeSpectrum renders a record back into its wire form, length prefix
// included. Used for fixtures and instrument simulation; DecodeSpectrum
// inverts it exactly.
func EncodeSpectrum(r *models.SpectrumRecord) []byte {
	h := r.Header
	b := make([]byte, HeaderSize+2*len(r.Body))
	binary.LittleEndian.PutUint16(b[0:], uint16(len(b)))
	binary.LittleEndian.PutUint64(b[offTimestamp:], h.TimestampMs)
	binary.LittleEndian.PutUint16(b[offRadiometer:], uint16(h.Type.Radiometer))
	binary.LittleEndian.PutUint16(b[offOptics:], uint16(h.Type.Optics))
	binary.LittleEndian.PutUint32(b[offExposure:], h.ExposureMs)
	binary.LittleEndian.PutUint16(b[offPixelCount:], h.PixelCount)
	binary.LittleEndian.PutUint64(b[offTemperature:], math.Float64bits(h.Temperature))
	binary.LittleEndian.PutUint16(b[offAccel+0:], uint16(h.Accel.MeanX))
	binary.LittleEndian.PutUint16(b[offAccel+2:], uint16(h.Accel.MeanY))
	binary.LittleEndian.PutUint16(b[offAccel+4:], uint16(h.Accel.MeanZ))
	binary.LittleEndian.PutUint16(b[offAccel+6:], uint16(h.Accel.StdX))
	binary.LittleEndian.PutUint16(b[offAccel+8:], uint16(h.Accel.StdY))
	binary.LittleEndian.PutUint16(b[offAccel+10:], uint16(h.Accel.StdZ))
	for i, dn := range r.Body {
		binary.LittleEndian.PutUint16(b[HeaderSize+2*i:], dn)
	}
	return b
}
