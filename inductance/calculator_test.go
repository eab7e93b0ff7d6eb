package inductance

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-inductance/internal/testutil"
	"github.com/cwbudde/algo-inductance/skin"
)

const goldenTol = 1e-10

func TestInductanceGolden(t *testing.T) {
	cu := CopperWire()

	tests := []struct {
		name string
		calc Calculator
		want float64
	}{
		{"round DC", RoundConductor{Length: 3, Diameter: 5e-3, Wire: cu}, 4.219934409801623e-06},
		{"earth", ConductorAgainstEarth{Length: 3, Diameter: 5e-3, Height: 0.25, Wire: cu}, 3.2336426470778394e-06},
		{"double line", DoubleLine{Length: 3, Diameter: 5e-3, Spacing: 0.25, Wire: cu}, 5.72620422318571e-06},
		{"rectangular double line", RectangularDoubleLine{Length: 3, Spacing: 0.25, Width: 8e-3, Thickness: 2.5e-3}, 5.505041492838524e-06},
		{"cage", Cage{Length: 3, Radius: 0.125, Diameter: 5e-3, Count: 6}, 1.959747060713153e-06},
		{"parallel n=2", ParallelConductors{Length: 3, Diameter: 5e-3, Spacing: 0.25, Height: 0.25, Count: 2, Wire: cu}, 1.813169215612441e-06},
		{"parallel n=4", ParallelConductors{Length: 3, Diameter: 5e-3, Spacing: 0.25, Height: 0.25, Count: 4, Wire: cu}, 9.166324998797414e-07},
		{"parallel 2h>=l", ParallelConductors{Length: 0.4, Diameter: 5e-3, Spacing: 0.1, Height: 0.25, Count: 3, Wire: cu}, 2.1425197439858214e-07},
		{"rectangular loop", RectangularLoop{Side1: 0.6, Side2: 0.4, Width: 0.02, Thickness: 4e-3}, 1.4943477980392172e-06},
		{"square loop", SquareLoop{Side: 0.5, Diameter: 0.01, Wire: cu}, 1.6364680743952367e-06},
		{"regular circle", RegularLoop{Perimeter: 1.2, Diameter: 0.01, Form: Circle}, 8.934686649364647e-07},
		{"flat band ring", FlatBandRing{Diameter: 0.5, Width: 0.05}, 1.0018160266227774e-06},
		{"tubular ring", TubularRing{Diameter: 0.5, Inner: 5e-3, Outer: 0.01}, 1.304330909609143e-06},
		{"solid ring", TubularRing{Diameter: 0.5, Outer: 0.01}, 1.3324953861655995e-06},
		{"single-layer coil", SingleLayerCoil{Diameter: 0.02, Length: 0.2, Turns: 100}, 1.893e-05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.calc.Inductance()
			if err != nil {
				t.Fatalf("Inductance() error: %v", err)
			}

			testutil.RequireRelNear(t, "L", got, tt.want, goldenTol)
		})
	}
}

func TestRoundConductorSkinEffect(t *testing.T) {
	c := RoundConductor{Length: 3, Diameter: 5e-3, Wire: CopperWire()}
	hf := c.AtFrequency(1e6)

	delta, err := hf.SkinFactor()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "δ", delta, 0.01306, 1e-12)

	got, err := hf.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "L(1 MHz)", got, 4.0777704098016225e-06, goldenTol)

	// The receiver is unchanged.
	if c.Wire.Frequency != 0 {
		t.Fatalf("AtFrequency mutated receiver: f = %v", c.Wire.Frequency)
	}
}

func TestSkinFactorOverride(t *testing.T) {
	w := CopperWire()
	w.Frequency = 1e6
	w.SkinFactor = 0.1

	c := DoubleLine{Length: 3, Diameter: 5e-3, Spacing: 0.25, Wire: w}

	delta, err := c.SkinFactor()
	if err != nil {
		t.Fatal(err)
	}

	if delta != 0.1 {
		t.Fatalf("SkinFactor() = %v, want override 0.1", delta)
	}

	w.SkinFactor = 0.3
	c.Wire = w

	if _, err := c.Inductance(); !errors.Is(err, ErrInvalidWire) {
		t.Fatalf("override above DC factor: err = %v, want ErrInvalidWire", err)
	}
}

func TestPermeabilityScalesInternalTerm(t *testing.T) {
	base := RoundConductor{Length: 3, Diameter: 5e-3, Wire: CopperWire()}
	iron := base
	iron.Wire.Permeability = 200

	l0, err := base.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	l1, err := iron.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	// ΔL = 2l·(μr−1)·δ nH with l in cm.
	want := 2 * 300 * 199 * skin.DCFactor * 1e-9
	testutil.RequireRelNear(t, "ΔL", l1-l0, want, 1e-9)
}

func TestInvalidInputs(t *testing.T) {
	cu := CopperWire()
	badWire := cu
	badWire.Conductivity = 0

	tests := []struct {
		name string
		calc Calculator
		want error
	}{
		{"zero length", RoundConductor{Length: 0, Diameter: 5e-3, Wire: cu}, ErrInvalidDimension},
		{"NaN diameter", RoundConductor{Length: 3, Diameter: math.NaN(), Wire: cu}, ErrInvalidDimension},
		{"infinite length", DoubleLine{Length: math.Inf(1), Diameter: 5e-3, Spacing: 0.25, Wire: cu}, ErrInvalidDimension},
		{"zero conductivity", RoundConductor{Length: 3, Diameter: 5e-3, Wire: badWire}, ErrInvalidWire},
		{"zero wire", RoundConductor{Length: 3, Diameter: 5e-3}, ErrInvalidWire},
		{"earth touching ground", ConductorAgainstEarth{Length: 3, Diameter: 0.02, Height: 0.01, Wire: cu}, ErrGeometry},
		{"double line overlap", DoubleLine{Length: 3, Diameter: 0.02, Spacing: 0.01, Wire: cu}, ErrGeometry},
		{"cage no conductors", Cage{Length: 3, Radius: 0.125, Diameter: 5e-3}, ErrInvalidCage},
		{"cage overlap", Cage{Length: 3, Radius: 0.01, Diameter: 0.02, Count: 6}, ErrGeometry},
		{"parallel n=1", ParallelConductors{Length: 3, Diameter: 5e-3, Spacing: 0.25, Height: 0.25, Count: 1, Wire: cu}, ErrConductorCount},
		{"parallel n=21", ParallelConductors{Length: 3, Diameter: 5e-3, Spacing: 0.25, Height: 0.25, Count: 21, Wire: cu}, ErrConductorCount},
		{"square loop wire too thick", SquareLoop{Side: 0.01, Diameter: 0.02, Wire: cu}, ErrGeometry},
		{"unknown form", RegularLoop{Perimeter: 1.2, Diameter: 0.01, Form: Form(42)}, ErrUnknownForm},
		{"tube inverted", TubularRing{Diameter: 0.5, Inner: 0.02, Outer: 0.01}, ErrGeometry},
		{"tube negative inner", TubularRing{Diameter: 0.5, Inner: -1e-3, Outer: 0.01}, ErrInvalidDimension},
		{"coil outside K table", SingleLayerCoil{Diameter: 1, Length: 0.005, Turns: 10}, ErrOutOfDomain},
		{"coil zero turns", SingleLayerCoil{Diameter: 0.02, Length: 0.2}, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.calc.Inductance()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Inductance() err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSingleConductorCage(t *testing.T) {
	// A one-wire cage reduces to 2l(ln(2l/(0.3894·d)) − 1).
	c := Cage{Length: 3, Radius: 0.125, Diameter: 5e-3, Count: 1}

	got, err := c.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	want := 2 * 300 * (math.Log(600/(0.3894*0.5)) - 1) * 1e-9
	testutil.RequireRelNear(t, "L", got, want, 1e-12)
}

func TestCageManyConductorsFinite(t *testing.T) {
	c := Cage{Length: 3, Radius: 0.5, Diameter: 5e-3, Count: 100}

	got, err := c.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, []float64{got})
}

func TestParallelMutual(t *testing.T) {
	c := ParallelConductors{Length: 3, Diameter: 5e-3, Spacing: 0.25, Height: 0.25, Count: 2, Wire: CopperWire()}

	M, err := c.Mutual()
	if err != nil {
		t.Fatal(err)
	}

	// 2h/l = 1/6, P interpolated between 0.1 and 0.2.
	p := 0.0975 + (0.1900-0.0975)*(1.0/6-0.1)/0.1
	want := 2 * 300 * math.Log(2*25/25.0-p+25/300.0) * 1e-9
	testutil.RequireRelNear(t, "M", M, want, 1e-9)

	if M <= 0 {
		t.Fatalf("M = %v, want positive", M)
	}
}

func TestTubularRingBounds(t *testing.T) {
	r := TubularRing{Diameter: 0.5, Inner: 5e-3, Outer: 0.01}

	low, high, err := r.Bounds()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "low", low, 1.304330909609143e-06, goldenTol)
	testutil.RequireRelNear(t, "high", high, 1.2539555698258546e-06, goldenTol)

	if high >= low {
		t.Fatalf("high-frequency bound %v not below low-frequency %v", high, low)
	}
}

func TestTubularRingThinWall(t *testing.T) {
	// A wall thin against the diameter carries its current near the surface,
	// so both bounds agree.
	r := TubularRing{Diameter: 0.5, Inner: 0.00999, Outer: 0.01}

	low, high, err := r.Bounds()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "low", low, high, 1e-3)
}

func TestRegularLoopFormOrder(t *testing.T) {
	// At equal perimeter a circle encloses the most area.
	prev := math.Inf(1)

	for _, f := range []Form{Circle, Octagon, Hexagon, Pentagon, Square} {
		got, err := RegularLoop{Perimeter: 1.2, Diameter: 0.01, Form: f}.Inductance()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}

		if got >= prev {
			t.Fatalf("%v: L = %v not below previous %v", f, got, prev)
		}

		prev = got
	}
}

func TestParseForm(t *testing.T) {
	for _, f := range Forms() {
		got, err := ParseForm(" " + f.String() + " ")
		if err != nil || got != f {
			t.Fatalf("ParseForm(%q) = %v, %v", f.String(), got, err)
		}
	}

	if _, err := ParseForm("Hexagon"); err != nil {
		t.Fatalf("case-insensitive parse failed: %v", err)
	}

	if _, err := ParseForm("ellipse"); !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("ParseForm(ellipse) err = %v, want ErrUnknownForm", err)
	}

	if got := Form(99).String(); got != "Form(99)" {
		t.Fatalf("Form(99).String() = %q", got)
	}
}

func TestReferences(t *testing.T) {
	for _, g := range Geometries() {
		c, err := g.Build(nil)
		if err != nil {
			t.Fatalf("%s: %v", g.Name, err)
		}

		if c.Reference() == "" {
			t.Fatalf("%s: empty reference", g.Name)
		}

		if a := c.Accuracy(); !(a.RelErr > 0 && a.RelErr <= 0.05) {
			t.Fatalf("%s: accuracy %+v", g.Name, a)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		geometry string
		want     string
	}{
		{"round", "error < 5%"},
		{"earth", "error < 5%"},
		{"double", "error < 5%"},
		{"rect-double", "error < 5%, low frequency"},
		{"cage", "error < 5%, low frequency"},
		{"parallel", "error ≈ 1%"},
		{"rect-loop", "error < 5%, low frequency"},
		{"square-loop", "error < 5%"},
		{"regular-loop", "error ≈ 0.5%, high frequency"},
		{"band-ring", "error < 5%, low frequency"},
		{"tube-ring", "error < 5%, low frequency"},
		{"coil", "error < 5%, low frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.geometry, func(t *testing.T) {
			g, err := Lookup(tt.geometry)
			if err != nil {
				t.Fatal(err)
			}

			c, err := g.Build(nil)
			if err != nil {
				t.Fatal(err)
			}

			if got := c.Accuracy().String(); got != tt.want {
				t.Fatalf("Accuracy() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := Regime(7).String(); got != "Regime(7)" {
		t.Fatalf("invalid regime = %q", got)
	}
}
