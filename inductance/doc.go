// Package inductance computes closed-form self-inductance estimates for
// conductor geometries after H. Hertwig, Induktivitäten. Berlin: Verlag für
// Radio-Foto-Kinotechnik, 1954.
//
// Every geometry is a plain struct with SI-unit fields, a Validate method and
// an Inductance method returning henry:
//
//	c := inductance.RoundConductor{
//	    Length:   3,
//	    Diameter: 5e-3,
//	    Wire:     inductance.CopperWire(),
//	}
//	L, err := c.Inductance()
//
// The book's formulas are written for lengths in centimetres and results in
// nanohenry; the conversion happens inside each calculator.
//
// Geometries whose conductor is round take a [Wire], which carries
// permeability, conductivity and operating frequency and contributes the
// skin-effect term μr·δ. Those geometries implement [FrequencyDependent] and
// can be evaluated over a frequency range with [Sweep].
//
// Table-driven geometries fail with [ErrOutOfDomain] when their ratio leaves
// the tabulated range; no value is computed in that case.
//
// [Geometries] lists every calculator by name together with its parameters,
// for use by command-line and file front ends.
package inductance
