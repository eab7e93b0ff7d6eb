package inductance

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-inductance/internal/testutil"
)

func TestGeometriesSortedAndUnique(t *testing.T) {
	gs := Geometries()
	if len(gs) != 12 {
		t.Fatalf("len(Geometries()) = %d, want 12", len(gs))
	}

	for i := 1; i < len(gs); i++ {
		if gs[i-1].Name >= gs[i].Name {
			t.Fatalf("geometries not sorted/unique at %q, %q", gs[i-1].Name, gs[i].Name)
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"round", 4.219934409801623e-06},
		{"earth", 3.2336426470778394e-06},
		{"double", 5.72620422318571e-06},
		{"rect-double", 5.505041492838524e-06},
		{"cage", 1.959747060713153e-06},
		{"parallel", 1.813169215612441e-06},
		{"rect-loop", 1.4943477980392172e-06},
		{"square-loop", 1.6364680743952367e-06},
		{"regular-loop", 8.934686649364647e-07},
		{"band-ring", 1.0018160266227774e-06},
		{"tube-ring", 1.304330909609143e-06},
		{"coil", 1.893e-05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Lookup(tt.name)
			if err != nil {
				t.Fatal(err)
			}

			c, err := g.Build(nil)
			if err != nil {
				t.Fatal(err)
			}

			got, err := c.Inductance()
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireRelNear(t, "L", got, tt.want, goldenTol)
		})
	}
}

func TestBuildCoercesStrings(t *testing.T) {
	g, err := Lookup("parallel")
	if err != nil {
		t.Fatal(err)
	}

	c, err := g.Build(Params{"count": "4", "length": "3"})
	if err != nil {
		t.Fatal(err)
	}

	pc, ok := c.(ParallelConductors)
	if !ok {
		t.Fatalf("Build returned %T", c)
	}

	if pc.Count != 4 {
		t.Fatalf("Count = %d, want 4", pc.Count)
	}

	got, err := pc.Inductance()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "L", got, 9.166324998797414e-07, goldenTol)
}

func TestBuildForm(t *testing.T) {
	g, err := Lookup("regular-loop")
	if err != nil {
		t.Fatal(err)
	}

	c, err := g.Build(Params{"form": "square"})
	if err != nil {
		t.Fatal(err)
	}

	if c.(RegularLoop).Form != Square {
		t.Fatalf("Form = %v, want square", c.(RegularLoop).Form)
	}

	if _, err := g.Build(Params{"form": "ellipse"}); !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("err = %v, want ErrUnknownForm", err)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Lookup("helix"); !errors.Is(err, ErrUnknownGeometry) {
		t.Fatalf("Lookup(helix) err = %v, want ErrUnknownGeometry", err)
	}

	g, err := Lookup("cage")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"unknown parameter", Params{"height": 1.0}, ErrUnknownParam},
		{"not a number", Params{"length": "long"}, ErrInvalidParam},
		{"fractional count", Params{"count": 2.5}, ErrInvalidParam},
		{"negative radius", Params{"radius": -1.0}, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Build(tt.params); !errors.Is(err, tt.want) {
				t.Fatalf("Build(%v) err = %v, want %v", tt.params, err, tt.want)
			}
		})
	}
}

func TestHasParam(t *testing.T) {
	g, err := Lookup("round")
	if err != nil {
		t.Fatal(err)
	}

	if !g.HasParam("conductivity") || g.HasParam("turns") {
		t.Fatal("HasParam mismatch for round conductor")
	}
}
