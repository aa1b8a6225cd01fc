package wavecal

import (
	"errors"
	"math"
	"testing"

	"spectra-viewer/models"
)

func TestDefaultChannelsAreMonotonic(t *testing.T) {
	cases := []struct {
		channel models.Radiometer
		pixels  int
	}{
		{models.RadiometerVIS, 2048},
		{models.RadiometerSWIR, 512},
	}
	table := Default()
	for _, tc := range cases {
		t.Run(tc.channel.String(), func(t *testing.T) {
			axis, err := table.Axis(tc.channel, tc.pixels)
			if err != nil {
				t.Fatalf("axis: %v", err)
			}
			if len(axis) != tc.pixels {
				t.Fatalf("axis length %d, want %d", len(axis), tc.pixels)
			}
			for i := 1; i < len(axis); i++ {
				if axis[i] <= axis[i-1] {
					t.Fatalf("axis not strictly increasing at pixel %d: %g -> %g",
						i, axis[i-1], axis[i])
				}
			}
		})
	}
}

func TestWavelengthMatchesDirectEvaluation(t *testing.T) {
	c := Coefficients{-1.7e-11, 2.9e-8, -1.1e-5, 0.8032, 339.2}
	table := NewTable(map[models.Radiometer]Coefficients{models.RadiometerVIS: c})

	for _, x := range []float64{0, 1, 17, 511, 1023, 2047} {
		want := c[0]*math.Pow(x, 4) + c[1]*math.Pow(x, 3) + c[2]*x*x + c[3]*x + c[4]
		got, err := table.Wavelength(models.RadiometerVIS, int(x))
		if err != nil {
			t.Fatalf("wavelength(%g): %v", x, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("wavelength(%g) = %.12f, want %.12f", x, got, want)
		}
	}
}

func TestWavelengthAtPixelZeroIsIntercept(t *testing.T) {
	nm, err := Default().Wavelength(models.RadiometerVIS, 0)
	if err != nil {
		t.Fatalf("wavelength: %v", err)
	}
	if nm != 339.2 {
		t.Fatalf("pixel 0 = %g, want 339.2", nm)
	}
}

func TestAxisMatchesScalarEvaluation(t *testing.T) {
	table := Default()
	axis, err := table.Axis(models.RadiometerSWIR, 64)
	if err != nil {
		t.Fatalf("axis: %v", err)
	}
	for i, got := range axis {
		want, _ := table.Wavelength(models.RadiometerSWIR, i)
		if got != want {
			t.Fatalf("axis[%d] = %g, scalar = %g", i, got, want)
		}
	}
}

func TestUnregisteredChannelIsUnavailable(t *testing.T) {
	table := NewTable(map[models.Radiometer]Coefficients{
		models.RadiometerVIS: {0, 0, 0, 1, 0},
	})

	_, err := table.Wavelength(models.RadiometerSWIR, 3)
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("want UnavailableError, got %v", err)
	}
	if unavail.Channel != models.RadiometerSWIR {
		t.Fatalf("bad channel in error: %v", unavail.Channel)
	}

	if _, err := table.Axis(models.Radiometer(9), 10); !errors.As(err, &unavail) {
		t.Fatalf("axis for unknown channel: want UnavailableError, got %v", err)
	}
	if table.Has(models.RadiometerSWIR) {
		t.Fatal("Has must be false for an unregistered channel")
	}
}

func TestNewTableFromConfig(t *testing.T) {
	cases := []struct {
		name     string
		channels map[string][]float64
		wantErr  bool
	}{
		{"valid", map[string][]float64{"VIS": {0, 0, 0, 1, 100}}, false},
		{"both channels", map[string][]float64{
			"VIS":  {0, 0, 0, 1, 100},
			"SWIR": {0, 0, 0, 2, 900},
		}, false},
		{"wrong vector length", map[string][]float64{"VIS": {1, 2, 3}}, true},
		{"unknown channel name", map[string][]float64{"UV": {0, 0, 0, 1, 0}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := NewTableFromConfig(tc.channels)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !table.Has(models.RadiometerVIS) {
				t.Fatal("VIS missing from table")
			}
		})
	}
}
