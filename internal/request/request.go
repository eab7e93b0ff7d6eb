// Package request reads calculation requests from YAML files and evaluates
// them.
//
// A request file lists one or more calculations:
//
//	unit: uH
//	materials: overrides.yaml
//	calculations:
//	  - geometry: round
//	    material: copper
//	    params:
//	      length: 3 m
//	      diameter: 5 mm
//	    sweep:
//	      start: 1 kHz
//	      stop: 10 MHz
//	      points: 31
//	      log: true
//	    xlsx: round.xlsx
//
// Parameter values are either plain numbers in SI units or strings with a
// unit symbol matching the parameter kind.
package request

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-inductance/harmonic"
	"github.com/cwbudde/algo-inductance/inductance"
	"github.com/cwbudde/algo-inductance/material"
	"github.com/cwbudde/algo-inductance/report"
	"github.com/cwbudde/algo-inductance/units"
)

// Errors returned while loading or evaluating a request.
var (
	ErrNoCalculations        = errors.New("request: no calculations")
	ErrNotFrequencyDependent = errors.New("request: geometry has no frequency dependence")
	ErrNotConductor          = errors.New("request: material does not conduct")
	ErrHarmonicsConflict     = errors.New("request: harmonics exclude sweep, frequency and skin")
	ErrPinnedSkin            = errors.New("request: skin override fixes the skin factor of a sweep")
	ErrInvalidHarmonics      = errors.New("request: invalid harmonics")
)

// DefaultSamples is the waveform length used for harmonics without an
// explicit sample count.
const DefaultSamples = 1024

// File is a parsed request file.
type File struct {
	Unit         string        `yaml:"unit"`
	Materials    string        `yaml:"materials"`
	Calculations []Calculation `yaml:"calculations"`

	dir string
}

// Calculation is one geometry evaluation.
type Calculation struct {
	Geometry  string         `yaml:"geometry"`
	Material  string         `yaml:"material"`
	Params    map[string]any `yaml:"params"`
	Sweep     *Sweep         `yaml:"sweep"`
	Harmonics *Harmonics     `yaml:"harmonics"`
	XLSX      string         `yaml:"xlsx"`
	TSV       string         `yaml:"tsv"`
}

// Sweep is a frequency sweep. Start and Stop accept unit strings.
type Sweep struct {
	Start  any  `yaml:"start"`
	Stop   any  `yaml:"stop"`
	Points int  `yaml:"points"`
	Log    bool `yaml:"log"`
}

// Harmonics describes a periodic conductor current as sine amplitudes of the
// fundamental and its multiples. Amplitudes[k] belongs to harmonic k+1.
type Harmonics struct {
	Fundamental   any       `yaml:"fundamental"`
	Amplitudes    []float64 `yaml:"amplitudes"`
	Samples       int       `yaml:"samples"`
	MinPowerRatio float64   `yaml:"min_power_ratio"`
}

// Load decodes a request document. Relative paths in the document resolve
// against dir.
func Load(r io.Reader, dir string) (*File, error) {
	f := &File{dir: dir}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("request: decode: %w", err)
	}

	if len(f.Calculations) == 0 {
		return nil, ErrNoCalculations
	}

	return f, nil
}

// LoadFile reads the named request file.
func LoadFile(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return Load(fp, filepath.Dir(name))
}

// Path resolves name against the directory of the request file.
func (f *File) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(f.dir, name)
}

// MaterialTable applies the file's material overrides to base.
func (f *File) MaterialTable(base material.Table) (material.Table, error) {
	if f.Materials == "" {
		return base, nil
	}

	return material.LoadTableFile(f.Path(f.Materials), base)
}

// OutputUnit returns the inductance unit for results. A non-empty override
// wins over the file's setting; µH is the default.
func (f *File) OutputUnit(override string) (units.Unit, error) {
	symbol := f.Unit
	if override != "" {
		symbol = override
	}

	if symbol == "" {
		symbol = "µH"
	}

	return units.ParseInductance(symbol)
}

// ResolveParams converts raw values to SI. Strings are parsed with the unit
// kind of their parameter, except for enumerated parameters whose default is
// itself a string.
func ResolveParams(g inductance.Geometry, raw map[string]any) (inductance.Params, error) {
	out := make(inductance.Params, len(raw))

	for name, v := range raw {
		param, ok := lookupParam(g, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no parameter %q", inductance.ErrUnknownParam, g.Name, name)
		}

		s, isString := v.(string)
		if _, enum := param.Default.(string); !isString || enum {
			out[name] = v
			continue
		}

		si, err := units.ParseValue(param.Kind, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", inductance.ErrInvalidParam, name, err)
		}

		out[name] = si
	}

	return out, nil
}

func lookupParam(g inductance.Geometry, name string) (inductance.Param, bool) {
	for _, p := range g.Params {
		if p.Name == name {
			return p, true
		}
	}

	return inductance.Param{}, false
}

// withDefaults returns p on top of the geometry defaults.
func withDefaults(g inductance.Geometry, p inductance.Params) inductance.Params {
	out := make(inductance.Params, len(g.Params))
	for _, param := range g.Params {
		out[param.Name] = param.Default
	}

	for k, v := range p {
		out[k] = v
	}

	return out
}

// ApplyMaterial fills conductivity and permeability of p from the named
// material, keeping values already present.
func ApplyMaterial(g inductance.Geometry, p inductance.Params, table material.Table, name string) error {
	id, err := material.Parse(name)
	if err != nil {
		return err
	}

	m, err := table.Lookup(id)
	if err != nil {
		return err
	}

	if !g.HasParam("conductivity") {
		return fmt.Errorf("%w: %s takes no conductor material", inductance.ErrUnknownParam, g.Name)
	}

	if m.Conductivity < 1 {
		return fmt.Errorf("%w: %s (%g S/m)", ErrNotConductor, m.Name, m.Conductivity)
	}

	if _, ok := p["conductivity"]; !ok {
		p["conductivity"] = m.Conductivity
	}

	if _, ok := p["permeability"]; !ok {
		p["permeability"] = m.Permeability
	}

	return nil
}

// Waveform synthesizes exactly one period of the current described by h and
// returns it with its sample rate.
func (h *Harmonics) Waveform() ([]float64, float64, error) {
	f0, err := quantity(units.Frequency, h.Fundamental)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: fundamental: %w", ErrInvalidHarmonics, err)
	}

	if !(f0 > 0) || math.IsInf(f0, 0) {
		return nil, 0, fmt.Errorf("%w: fundamental %v Hz", ErrInvalidHarmonics, f0)
	}

	n := h.Samples
	if n == 0 {
		n = DefaultSamples
	}

	if len(h.Amplitudes) == 0 || len(h.Amplitudes) > n/2 {
		return nil, 0, fmt.Errorf("%w: %d amplitudes for %d samples", ErrInvalidHarmonics, len(h.Amplitudes), n)
	}

	out := make([]float64, n)

	for k, a := range h.Amplitudes {
		step := 2 * math.Pi * float64(k+1) / float64(n)
		for i := range out {
			out[i] += a * math.Sin(step*float64(i))
		}
	}

	return out, f0 * float64(n), nil
}

// Evaluate computes c with materials from table and returns the result in
// unit. Export targets are not written.
func (c *Calculation) Evaluate(table material.Table, unit units.Unit) (*report.Result, error) {
	g, err := inductance.Lookup(c.Geometry)
	if err != nil {
		return nil, err
	}

	p, err := ResolveParams(g, c.Params)
	if err != nil {
		return nil, err
	}

	if c.Material != "" {
		if err := ApplyMaterial(g, p, table, c.Material); err != nil {
			return nil, err
		}
	}

	if c.Harmonics != nil {
		if c.Sweep != nil {
			return nil, fmt.Errorf("%w: sweep given", ErrHarmonicsConflict)
		}

		if err := c.applyHarmonics(g, p); err != nil {
			return nil, err
		}
	}

	if c.Sweep != nil {
		if skin, err := p.Float(inductance.SkinParam); err == nil && skin > 0 {
			return nil, fmt.Errorf("%w: skin = %v", ErrPinnedSkin, skin)
		}
	}

	calc, err := g.Build(p)
	if err != nil {
		return nil, err
	}

	L, err := calc.Inductance()
	if err != nil {
		return nil, err
	}

	res := &report.Result{
		Geometry:   g.Name,
		Title:      g.Title,
		Reference:  calc.Reference(),
		Accuracy:   calc.Accuracy(),
		Params:     entries(g, withDefaults(g, p)),
		Inductance: L,
		Unit:       unit,
	}

	fd, dependent := calc.(inductance.FrequencyDependent)
	if dependent {
		if res.SkinFactor, err = fd.SkinFactor(); err != nil {
			return nil, err
		}

		if res.Frequency, err = withDefaults(g, p).Float("frequency"); err != nil {
			return nil, err
		}
	}

	if c.Sweep != nil {
		if !dependent {
			return nil, fmt.Errorf("%w: %s", ErrNotFrequencyDependent, g.Name)
		}

		s, err := c.Sweep.resolve()
		if err != nil {
			return nil, err
		}

		if res.Points, err = inductance.Sweep(fd, s); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (c *Calculation) applyHarmonics(g inductance.Geometry, p inductance.Params) error {
	if !g.HasParam(inductance.SkinParam) {
		return fmt.Errorf("%w: %s", ErrNotFrequencyDependent, g.Name)
	}

	for _, name := range []string{"frequency", inductance.SkinParam} {
		if _, set := p[name]; set {
			return fmt.Errorf("%w: %s given", ErrHarmonicsConflict, name)
		}
	}

	full := withDefaults(g, p)

	kappa, err := full.Float("conductivity")
	if err != nil {
		return err
	}

	d, err := full.Float("diameter")
	if err != nil {
		return err
	}

	current, rate, err := c.Harmonics.Waveform()
	if err != nil {
		return err
	}

	a := harmonic.Analysis{
		SampleRate:    rate,
		Conductivity:  kappa,
		Diameter:      d,
		MinPowerRatio: c.Harmonics.MinPowerRatio,
	}

	delta, err := a.EffectiveFactor(current)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHarmonics, err)
	}

	p[inductance.SkinParam] = delta
	p["frequency"] = rate / float64(len(current))

	return nil
}

func (s *Sweep) resolve() (inductance.FrequencySweep, error) {
	start, err := quantity(units.Frequency, s.Start)
	if err != nil {
		return inductance.FrequencySweep{}, fmt.Errorf("%w: start: %w", inductance.ErrInvalidSweep, err)
	}

	stop, err := quantity(units.Frequency, s.Stop)
	if err != nil {
		return inductance.FrequencySweep{}, fmt.Errorf("%w: stop: %w", inductance.ErrInvalidSweep, err)
	}

	fs := inductance.FrequencySweep{Start: start, Stop: stop, Points: s.Points, Log: s.Log}

	return fs, fs.Validate()
}

// quantity reads a YAML scalar that is either a number in SI units or a
// string with a unit symbol.
func quantity(kind units.Kind, v any) (float64, error) {
	if s, ok := v.(string); ok {
		return units.ParseValue(kind, s)
	}

	return cast.ToFloat64E(v)
}

func entries(g inductance.Geometry, p inductance.Params) []report.Entry {
	out := make([]report.Entry, 0, len(g.Params))

	for _, param := range g.Params {
		symbol := ""
		if list := units.Units(param.Kind); len(list) > 0 {
			symbol = list[0].Symbol
		}

		out = append(out, report.Entry{Name: param.Name, Value: p[param.Name], Unit: symbol})
	}

	return out
}

// Export writes res to the targets named by c, resolved against f.
func (f *File) Export(c *Calculation, res *report.Result) error {
	if c.XLSX != "" {
		if err := report.SaveXLSX(f.Path(c.XLSX), res); err != nil {
			return err
		}
	}

	if c.TSV != "" {
		if err := report.SaveTSV(f.Path(c.TSV), res); err != nil {
			return err
		}
	}

	return nil
}
