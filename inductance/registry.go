package inductance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-inductance/skin"
	"github.com/cwbudde/algo-inductance/units"
	"github.com/spf13/cast"
)

// Registry errors.
var (
	ErrUnknownGeometry = errors.New("inductance: unknown geometry")
	ErrUnknownParam    = errors.New("inductance: unknown parameter")
	ErrInvalidParam    = errors.New("inductance: parameter value not usable")
)

// SkinParam names the skin-effect override accepted by geometries with a
// round conductor.
const SkinParam = "skin"

// Params holds named calculator inputs in SI units. Values may be numbers or
// strings as read from a command line or YAML file; they are coerced on use.
type Params map[string]any

// Param describes one input of a Geometry.
type Param struct {
	Name    string
	Kind    units.Kind // unit kind of numeric values
	Default any        // SI value, or a name for enumerated inputs
	Usage   string
}

// Geometry is a named calculator constructor.
type Geometry struct {
	Name   string
	Title  string
	Params []Param
	New    func(Params) (Calculator, error)
}

// Build fills missing inputs with their defaults, rejects unknown names and
// constructs the calculator. The calculator is validated before return.
func (g Geometry) Build(p Params) (Calculator, error) {
	full := make(Params, len(g.Params))

	for _, param := range g.Params {
		full[param.Name] = param.Default
	}

	for name, v := range p {
		if _, ok := g.param(name); !ok {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, g.Name, name)
		}

		full[name] = v
	}

	c, err := g.New(full)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// param returns the descriptor named name.
func (g Geometry) param(name string) (Param, bool) {
	for _, p := range g.Params {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Float returns the named input as float64.
func (p Params) Float(name string) (float64, error) {
	v, err := cast.ToFloat64E(p[name])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidParam, name, err)
	}

	return v, nil
}

// Int returns the named input as int. Fractional values are rejected.
func (p Params) Int(name string) (int, error) {
	f, err := p.Float(name)
	if err != nil {
		return 0, err
	}

	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("%w: %s = %v is not an integer", ErrInvalidParam, name, f)
	}

	return n, nil
}

// String returns the named input as string.
func (p Params) String(name string) (string, error) {
	s, err := cast.ToStringE(p[name])
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidParam, name, err)
	}

	return s, nil
}

// floats reads several inputs in order, stopping at the first failure.
func (p Params) floats(names ...string) ([]float64, error) {
	out := make([]float64, len(names))

	for i, name := range names {
		v, err := p.Float(name)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func (p Params) wire() (Wire, error) {
	v, err := p.floats("permeability", "conductivity", "frequency", SkinParam)
	if err != nil {
		return Wire{}, err
	}

	return Wire{Permeability: v[0], Conductivity: v[1], Frequency: v[2], SkinFactor: v[3]}, nil
}

func lengthParam(name string, def float64, usage string) Param {
	return Param{Name: name, Kind: units.Length, Default: def, Usage: usage}
}

func wireParams(frequency float64) []Param {
	return []Param{
		{Name: "permeability", Kind: units.Dimensionless, Default: 1.0, Usage: "relative permeability of the conductor"},
		{Name: "frequency", Kind: units.Frequency, Default: frequency, Usage: "operating frequency, 0 for DC"},
		{Name: "conductivity", Kind: units.Conductivity, Default: skin.CopperConductivity, Usage: "conductivity of the conductor"},
		{Name: SkinParam, Kind: units.Dimensionless, Default: 0.0, Usage: "skin-effect factor override, 0 to compute from frequency"},
	}
}

var geometries = []Geometry{
	{
		Name:  "round",
		Title: "Long round conductor",
		Params: append([]Param{
			lengthParam("length", 3, "conductor length"),
			lengthParam("diameter", 5e-3, "conductor diameter"),
		}, wireParams(0)...),
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "diameter")
			if err != nil {
				return nil, err
			}

			w, err := p.wire()
			if err != nil {
				return nil, err
			}

			return RoundConductor{Length: v[0], Diameter: v[1], Wire: w}, nil
		},
	},
	{
		Name:  "earth",
		Title: "Conductor against earth",
		Params: append([]Param{
			lengthParam("length", 3, "conductor length"),
			lengthParam("diameter", 5e-3, "conductor diameter"),
			lengthParam("height", 0.25, "height of the conductor axis above ground"),
		}, wireParams(0)...),
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "diameter", "height")
			if err != nil {
				return nil, err
			}

			w, err := p.wire()
			if err != nil {
				return nil, err
			}

			return ConductorAgainstEarth{Length: v[0], Diameter: v[1], Height: v[2], Wire: w}, nil
		},
	},
	{
		Name:  "double",
		Title: "Double line",
		Params: append([]Param{
			lengthParam("length", 3, "line length"),
			lengthParam("diameter", 5e-3, "conductor diameter"),
			lengthParam("spacing", 0.25, "axis-to-axis spacing"),
		}, wireParams(0)...),
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "diameter", "spacing")
			if err != nil {
				return nil, err
			}

			w, err := p.wire()
			if err != nil {
				return nil, err
			}

			return DoubleLine{Length: v[0], Diameter: v[1], Spacing: v[2], Wire: w}, nil
		},
	},
	{
		Name:  "rect-double",
		Title: "Double line of rectangular conductors",
		Params: []Param{
			lengthParam("length", 3, "line length"),
			lengthParam("spacing", 0.25, "centre-to-centre spacing"),
			lengthParam("width", 8e-3, "conductor width"),
			lengthParam("thickness", 2.5e-3, "conductor thickness"),
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "spacing", "width", "thickness")
			if err != nil {
				return nil, err
			}

			return RectangularDoubleLine{Length: v[0], Spacing: v[1], Width: v[2], Thickness: v[3]}, nil
		},
	},
	{
		Name:  "cage",
		Title: "Cage of thin conductors",
		Params: []Param{
			lengthParam("length", 3, "cage length"),
			lengthParam("radius", 0.125, "radius of the circle through the conductor axes"),
			lengthParam("diameter", 5e-3, "conductor diameter"),
			{Name: "count", Kind: units.Dimensionless, Default: 6, Usage: "number of conductors"},
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "radius", "diameter")
			if err != nil {
				return nil, err
			}

			n, err := p.Int("count")
			if err != nil {
				return nil, err
			}

			return Cage{Length: v[0], Radius: v[1], Diameter: v[2], Count: n}, nil
		},
	},
	{
		Name:  "parallel",
		Title: "Parallel conductors against earth",
		Params: append([]Param{
			lengthParam("length", 3, "conductor length"),
			lengthParam("diameter", 5e-3, "conductor diameter"),
			lengthParam("spacing", 0.25, "spacing of neighbouring conductors"),
			lengthParam("height", 0.25, "height above ground"),
			{Name: "count", Kind: units.Dimensionless, Default: 2, Usage: "number of conductors, 2..20"},
		}, wireParams(0)...),
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("length", "diameter", "spacing", "height")
			if err != nil {
				return nil, err
			}

			n, err := p.Int("count")
			if err != nil {
				return nil, err
			}

			w, err := p.wire()
			if err != nil {
				return nil, err
			}

			return ParallelConductors{
				Length: v[0], Diameter: v[1], Spacing: v[2], Height: v[3],
				Count: n, Wire: w,
			}, nil
		},
	},
	{
		Name:  "rect-loop",
		Title: "Rectangular loop of rectangular conductor",
		Params: []Param{
			lengthParam("side1", 0.6, "first side length"),
			lengthParam("side2", 0.4, "second side length"),
			lengthParam("width", 0.02, "conductor width"),
			lengthParam("thickness", 4e-3, "conductor thickness"),
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("side1", "side2", "width", "thickness")
			if err != nil {
				return nil, err
			}

			return RectangularLoop{Side1: v[0], Side2: v[1], Width: v[2], Thickness: v[3]}, nil
		},
	},
	{
		Name:  "square-loop",
		Title: "Square loop of round wire",
		Params: append([]Param{
			lengthParam("side", 0.5, "side length"),
			lengthParam("diameter", 0.01, "wire diameter"),
		}, wireParams(10)...),
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("side", "diameter")
			if err != nil {
				return nil, err
			}

			w, err := p.wire()
			if err != nil {
				return nil, err
			}

			return SquareLoop{Side: v[0], Diameter: v[1], Wire: w}, nil
		},
	},
	{
		Name:  "regular-loop",
		Title: "Wire loop of regular form",
		Params: []Param{
			lengthParam("perimeter", 1.2, "loop perimeter"),
			lengthParam("diameter", 0.01, "wire diameter"),
			{Name: "form", Kind: units.Dimensionless, Default: Circle.String(), Usage: "loop outline"},
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("perimeter", "diameter")
			if err != nil {
				return nil, err
			}

			name, err := p.String("form")
			if err != nil {
				return nil, err
			}

			form, err := ParseForm(name)
			if err != nil {
				return nil, err
			}

			return RegularLoop{Perimeter: v[0], Diameter: v[1], Form: form}, nil
		},
	},
	{
		Name:  "band-ring",
		Title: "Ring of flat strip",
		Params: []Param{
			lengthParam("diameter", 0.5, "ring diameter"),
			lengthParam("width", 0.05, "strip width"),
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("diameter", "width")
			if err != nil {
				return nil, err
			}

			return FlatBandRing{Diameter: v[0], Width: v[1]}, nil
		},
	},
	{
		Name:  "tube-ring",
		Title: "Circular ring of tubular cross-section",
		Params: []Param{
			lengthParam("diameter", 0.5, "ring diameter"),
			lengthParam("inner", 5e-3, "inner tube diameter, 0 for solid"),
			lengthParam("outer", 0.01, "outer tube diameter"),
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("diameter", "inner", "outer")
			if err != nil {
				return nil, err
			}

			return TubularRing{Diameter: v[0], Inner: v[1], Outer: v[2]}, nil
		},
	},
	{
		Name:  "coil",
		Title: "Single-layer cylindrical coil",
		Params: []Param{
			lengthParam("diameter", 0.02, "mean winding diameter"),
			lengthParam("length", 0.2, "winding length"),
			{Name: "turns", Kind: units.Dimensionless, Default: 100, Usage: "number of turns"},
		},
		New: func(p Params) (Calculator, error) {
			v, err := p.floats("diameter", "length", "turns")
			if err != nil {
				return nil, err
			}

			return SingleLayerCoil{Diameter: v[0], Length: v[1], Turns: v[2]}, nil
		},
	},
}

// Geometries returns all registered geometries sorted by name.
func Geometries() []Geometry {
	out := make([]Geometry, len(geometries))
	copy(out, geometries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup returns the geometry registered under name.
func Lookup(name string) (Geometry, error) {
	for _, g := range geometries {
		if g.Name == name {
			return g, nil
		}
	}

	return Geometry{}, fmt.Errorf("%w: %q", ErrUnknownGeometry, name)
}

// HasParam reports whether g accepts an input named name.
func (g Geometry) HasParam(name string) bool {
	_, ok := g.param(name)
	return ok
}
