package table

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned when constructing curves.
var (
	ErrTooShort       = errors.New("table: curve needs at least two points")
	ErrLengthMismatch = errors.New("table: x and y have different lengths")
	ErrNotIncreasing  = errors.New("table: x values must be strictly increasing")
	ErrNonFinite      = errors.New("table: curve contains NaN or Inf")
)

// Curve is an ordered table of (x, y) nodes with strictly increasing x.
// A Curve is immutable after construction and safe for concurrent use.
type Curve struct {
	name string
	x    []float64
	y    []float64
}

// NewCurve validates xs and ys and returns a Curve holding private copies.
func NewCurve(name string, xs, ys []float64) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	if len(xs) < 2 {
		return nil, ErrTooShort
	}

	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}

		if i > 0 && xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%v after x[%d]=%v", ErrNotIncreasing, i, xs[i], i-1, xs[i-1])
		}
	}

	return &Curve{
		name: name,
		x:    append([]float64(nil), xs...),
		y:    append([]float64(nil), ys...),
	}, nil
}

// MustCurve is like NewCurve but panics on malformed data.
// It is meant for static reference tables built at package init.
func MustCurve(name string, xs, ys []float64) *Curve {
	c, err := NewCurve(name, xs, ys)
	if err != nil {
		panic(fmt.Sprintf("table %s: %v", name, err))
	}

	return c
}

// Name returns the curve label.
func (c *Curve) Name() string { return c.name }

// Len returns the number of nodes.
func (c *Curve) Len() int { return len(c.x) }

// Domain returns the closed interval covered by the curve.
func (c *Curve) Domain() (lo, hi float64) {
	return c.x[0], c.x[len(c.x)-1]
}

// X returns a copy of the node abscissae.
func (c *Curve) X() []float64 { return append([]float64(nil), c.x...) }

// Y returns a copy of the node values.
func (c *Curve) Y() []float64 { return append([]float64(nil), c.y...) }

// Interpolate evaluates the curve at x. ok is false when x lies outside
// the domain, in which case the returned value is 0 and must not be used.
func (c *Curve) Interpolate(x float64) (float64, bool) {
	return Interpolate(c.x, c.y, x)
}

// InterpolateAll evaluates the curve at every element of xs. Results are
// written to dst, which is grown if needed. ok[i] reports whether xs[i] was
// inside the domain.
func (c *Curve) InterpolateAll(dst, xs []float64) ([]float64, []bool) {
	if cap(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}

	dst = dst[:len(xs)]
	ok := make([]bool, len(xs))

	for i, x := range xs {
		dst[i], ok[i] = Interpolate(c.x, c.y, x)
	}

	return dst, ok
}

// Interpolate evaluates the piecewise-linear function through (xs[i], ys[i])
// at x. xs must be sorted ascending with at least two entries and ys must have
// the same length; Interpolate does not check this.
//
// A query equal to a node returns that node's y exactly. Queries below xs[0],
// above xs[len-1] or NaN return (0, false).
func Interpolate(xs, ys []float64, x float64) (float64, bool) {
	n := len(xs)
	if n == 0 || len(ys) < n || !(x >= xs[0] && x <= xs[n-1]) {
		return 0, false
	}

	// First index with xs[i] >= x.
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i], true
	}

	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]

	return y0 + (y1-y0)*(x-x0)/(x1-x0), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
