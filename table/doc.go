// Package table provides tabulated empirical correction curves and the
// bounds-checked linear interpolation used to read them.
//
// A [Curve] is an immutable, strictly increasing set of (x, y) nodes. Queries
// inside the closed domain [x0, xn] are answered by piecewise-linear
// interpolation; queries outside it are reported through the comma-ok
// result rather than an error, so hot calculation loops never pay for an
// error path on an expected condition:
//
//	p, ok := table.P2hl.Interpolate(2 * h / l)
//	if !ok {
//	    // ratio outside the tabulated range
//	}
//
// The curves from H. Hertwig, Induktivitäten (1954) are provided as package
// variables:
//
//   - [P2hl]:    mutual-inductance correction P(2h/l) for 2h < l
//   - [Q2lh]:    mutual-inductance correction Q(l/2h) for 2h >= l
//   - [KDl]:     single-layer coil factor K(D/l)
//   - [KnTable]: bundle correction k_n for n = 2..20 parallel conductors
package table
