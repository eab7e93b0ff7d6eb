package request

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-inductance/inductance"
	"github.com/cwbudde/algo-inductance/material"
	"github.com/cwbudde/algo-inductance/units"
)

const roundDoc = `
unit: nH
calculations:
  - geometry: round
    material: copper
    params:
      length: 3 m
      diameter: 5 mm
    sweep:
      start: 0
      stop: 1 MHz
      points: 3
`

func mustLoad(t *testing.T, doc string) *File {
	t.Helper()

	f, err := Load(strings.NewReader(doc), t.TempDir())
	require.NoError(t, err)

	return f
}

func TestLoadAndEvaluate(t *testing.T) {
	f := mustLoad(t, roundDoc)
	require.Len(t, f.Calculations, 1)

	unit, err := f.OutputUnit("")
	require.NoError(t, err)
	assert.Equal(t, "nH", unit.Symbol)

	res, err := f.Calculations[0].Evaluate(material.DefaultTable(), unit)
	require.NoError(t, err)

	assert.Equal(t, "round", res.Geometry)
	assert.Equal(t, "error < 5%", res.Accuracy.String())
	assert.Equal(t, 0.0, res.Frequency)
	// Copper is slightly diamagnetic, so the internal term shifts by about 1e-12 H.
	assert.InDelta(t, 4.219934409801623e-06, res.Inductance, 2e-12)
	assert.Equal(t, 0.25, res.SkinFactor)
	require.Len(t, res.Points, 3)
	assert.Equal(t, 1e6, res.Points[2].Frequency)
	assert.Less(t, res.Points[2].Inductance, res.Points[0].Inductance)

	var diameter any
	for _, e := range res.Params {
		if e.Name == "diameter" {
			diameter = e.Value
			assert.Equal(t, "m", e.Unit)
		}
	}
	assert.InDelta(t, 5e-3, diameter, 1e-15)
}

func TestOutputUnitOverride(t *testing.T) {
	f := mustLoad(t, roundDoc)

	u, err := f.OutputUnit("uH")
	require.NoError(t, err)
	assert.Equal(t, "µH", u.Symbol)

	f.Unit = ""
	u, err = f.OutputUnit("")
	require.NoError(t, err)
	assert.Equal(t, "µH", u.Symbol)

	_, err = f.OutputUnit("furlong")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""), ".")
	assert.ErrorIs(t, err, ErrNoCalculations)

	_, err = Load(strings.NewReader("calculations: []\n"), ".")
	assert.ErrorIs(t, err, ErrNoCalculations)

	_, err = Load(strings.NewReader("colour: red\n"), ".")
	assert.Error(t, err)
}

func TestResolveParams(t *testing.T) {
	g, err := inductance.Lookup("regular-loop")
	require.NoError(t, err)

	p, err := ResolveParams(g, map[string]any{
		"perimeter": "120 cm",
		"diameter":  0.01,
		"form":      "hexagon",
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.2, p["perimeter"], 1e-15)
	assert.Equal(t, 0.01, p["diameter"])
	assert.Equal(t, "hexagon", p["form"])

	_, err = ResolveParams(g, map[string]any{"turns": 3})
	assert.ErrorIs(t, err, inductance.ErrUnknownParam)

	_, err = ResolveParams(g, map[string]any{"perimeter": "120 Hz"})
	assert.ErrorIs(t, err, inductance.ErrInvalidParam)
}

func TestApplyMaterial(t *testing.T) {
	g, err := inductance.Lookup("double")
	require.NoError(t, err)

	p := inductance.Params{"permeability": 1.0}
	require.NoError(t, ApplyMaterial(g, p, material.DefaultTable(), "Iron"))
	assert.Equal(t, 1.02e7, p["conductivity"])
	assert.Equal(t, 1.0, p["permeability"], "explicit value kept")

	assert.ErrorIs(t, ApplyMaterial(g, inductance.Params{}, material.DefaultTable(), "teflon"), ErrNotConductor)
	assert.ErrorIs(t, ApplyMaterial(g, inductance.Params{}, material.DefaultTable(), "unobtainium"), material.ErrUnknownMaterial)

	coil, err := inductance.Lookup("coil")
	require.NoError(t, err)
	assert.ErrorIs(t, ApplyMaterial(coil, inductance.Params{}, material.DefaultTable(), "copper"), inductance.ErrUnknownParam)
}

func TestMaterialOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mat.yaml"),
		[]byte("materials:\n  - name: copper\n    conductivity: 5.8e7\n"), 0o600))

	doc := "materials: mat.yaml\n" + strings.TrimPrefix(roundDoc, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc.yaml"), []byte(doc), 0o600))

	f, err := LoadFile(filepath.Join(dir, "calc.yaml"))
	require.NoError(t, err)

	table, err := f.MaterialTable(material.DefaultTable())
	require.NoError(t, err)

	cu, err := table.Lookup(material.Copper)
	require.NoError(t, err)
	assert.Equal(t, 5.8e7, cu.Conductivity)
}

func TestHarmonics(t *testing.T) {
	const doc = `
calculations:
  - geometry: round
    params:
      diameter: 5 mm
    harmonics:
      fundamental: 100 kHz
      amplitudes: [1]
      samples: 256
`
	f := mustLoad(t, doc)

	res, err := f.Calculations[0].Evaluate(material.DefaultTable(), units.Henry)
	require.NoError(t, err)

	want := 6.53 / (math.Sqrt(1e5) * 0.5)
	assert.InDelta(t, want, res.SkinFactor, 1e-9)
	assert.InDelta(t, 1e5, res.Frequency, 1e-6)

	// The pure sine reproduces the single-frequency result.
	plain, err := inductance.RoundConductor{Length: 3, Diameter: 5e-3, Wire: inductance.CopperWire()}.
		AtFrequency(1e5).Inductance()
	require.NoError(t, err)
	assert.InDelta(t, plain, res.Inductance, 1e-15)
}

func TestWaveform(t *testing.T) {
	h := Harmonics{Fundamental: "1 MHz", Amplitudes: []float64{1, 0, 0.5}, Samples: 64}

	current, rate, err := h.Waveform()
	require.NoError(t, err)
	assert.Len(t, current, 64)
	assert.Equal(t, 64e6, rate)

	_, _, err = (&Harmonics{Fundamental: "1 MHz", Amplitudes: []float64{1}, Samples: 100}).Waveform()
	require.NoError(t, err, "length is checked by the spectrum, not the synthesizer")

	_, _, err = (&Harmonics{Fundamental: 0, Amplitudes: []float64{1}}).Waveform()
	assert.ErrorIs(t, err, ErrInvalidHarmonics)

	_, _, err = (&Harmonics{Fundamental: 50, Samples: 8, Amplitudes: make([]float64, 5)}).Waveform()
	assert.ErrorIs(t, err, ErrInvalidHarmonics)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		calc Calculation
		want error
	}{
		{"unknown geometry", Calculation{Geometry: "helix"}, inductance.ErrUnknownGeometry},
		{"sweep without skin effect", Calculation{
			Geometry: "coil",
			Sweep:    &Sweep{Start: 0, Stop: 1e3, Points: 2},
		}, ErrNotFrequencyDependent},
		{"harmonics with sweep", Calculation{
			Geometry:  "round",
			Sweep:     &Sweep{Start: 0, Stop: 1e3, Points: 2},
			Harmonics: &Harmonics{Fundamental: 50, Amplitudes: []float64{1}},
		}, ErrHarmonicsConflict},
		{"harmonics with frequency", Calculation{
			Geometry:  "round",
			Params:    map[string]any{"frequency": "1 MHz"},
			Harmonics: &Harmonics{Fundamental: 50, Amplitudes: []float64{1}},
		}, ErrHarmonicsConflict},
		{"harmonics with skin", Calculation{
			Geometry:  "round",
			Params:    map[string]any{"skin": 0.1},
			Harmonics: &Harmonics{Fundamental: 50, Amplitudes: []float64{1}},
		}, ErrHarmonicsConflict},
		{"sweep with skin", Calculation{
			Geometry: "round",
			Params:   map[string]any{"skin": "0.1"},
			Sweep:    &Sweep{Start: 0, Stop: 1e3, Points: 2},
		}, ErrPinnedSkin},
		{"bad sweep", Calculation{
			Geometry: "round",
			Sweep:    &Sweep{Start: "1 kHz", Stop: "1 Hz", Points: 2},
		}, inductance.ErrInvalidSweep},
		{"harmonics non-power-of-two", Calculation{
			Geometry:  "round",
			Harmonics: &Harmonics{Fundamental: 50, Amplitudes: []float64{1}, Samples: 100},
		}, ErrInvalidHarmonics},
		{"invalid geometry", Calculation{
			Geometry: "tube-ring",
			Params:   map[string]any{"inner": "2 cm"},
		}, inductance.ErrGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.calc.Evaluate(material.DefaultTable(), units.Henry)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	doc := roundDoc + "    xlsx: out.xlsx\n    tsv: out.tsv\n"

	f, err := Load(strings.NewReader(doc), dir)
	require.NoError(t, err)

	c := &f.Calculations[0]
	res, err := c.Evaluate(material.DefaultTable(), units.Henry)
	require.NoError(t, err)
	require.NoError(t, f.Export(c, res))

	assert.FileExists(t, filepath.Join(dir, "out.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "out.tsv"))
}
