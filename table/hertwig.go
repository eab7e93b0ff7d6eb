package table

// Correction curves from H. Hertwig, Induktivitäten. Berlin: Verlag für
// Radio-Foto-Kinotechnik, 1954.

// P2hl is the correction P(2h/l) for the mutual inductance of two parallel
// conductors above earth when 2h < l.
var P2hl = MustCurve("P(2h/l)",
	[]float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	[]float64{0.0000, 0.0975, 0.1900, 0.2778, 0.3608, 0.4393, 0.5136, 0.5840, 0.6507, 0.7139, 0.7740},
)

// Q2lh is the correction Q(l/2h) for the mutual inductance of two parallel
// conductors above earth when 2h >= l.
var Q2lh = MustCurve("Q(l/2h)",
	[]float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	[]float64{1.0000, 1.0499, 1.0997, 1.1489, 1.1975, 1.2452, 1.2918, 1.3373, 1.3819, 1.4251, 1.4672},
)

// KDl is the factor K(D/l) of a single-layer cylindrical coil of diameter D
// and winding length l.
//
// Entries at 0.28, 0.90, 1.20, 1.80 and 2.60 follow the smooth curve instead
// of the printed values 2.406, 6.171, 7.510, 9.569 and 12.01. The value at
// 2.60 is π²·(D/l)·k with Nagaoka's coefficient k.
var KDl = MustCurve("K(D/l)",
	[]float64{
		0.00, 0.02, 0.04, 0.06, 0.08, 0.10, 0.12, 0.14, 0.16, 0.18,
		0.20, 0.22, 0.24, 0.26, 0.28, 0.30, 0.32, 0.34, 0.36, 0.38,
		0.40, 0.42, 0.44, 0.46, 0.48, 0.50, 0.55, 0.60, 0.65, 0.70,
		0.75, 0.80, 0.85, 0.90, 0.95, 1.00, 1.10, 1.20, 1.30, 1.40,
		1.50, 1.60, 1.70, 1.80, 1.90, 2.00, 2.20, 2.40, 2.60, 2.80,
		3.00, 3.50, 4.00, 4.50, 5.00, 6.00, 7.00, 8.00, 9.00, 10.0,
		12.0, 14.0, 16.0, 18.0, 20.0, 25.0, 30.0, 35.0, 40.0, 45.0,
		50.0, 60.0, 70.0, 80.0, 90.0, 100.0,
	},
	[]float64{
		0.0000, 0.1957, 0.3882, 0.5776, 0.7643, 0.9465, 1.126, 1.303, 1.477, 1.648,
		1.817, 1.982, 2.144, 2.305, 2.446, 2.616, 2.769, 2.919, 3.067, 3.212,
		3.355, 3.497, 3.635, 3.771, 3.905, 4.039, 4.358, 4.668, 4.969, 5.256,
		5.535, 5.803, 6.063, 6.271, 6.559, 6.795, 7.244, 7.610, 8.060, 8.453,
		8.811, 9.154, 9.480, 9.769, 10.09, 10.37, 10.93, 11.41, 11.87, 12.30,
		12.71, 13.63, 14.43, 15.14, 15.78, 16.90, 17.85, 18.68, 19.41, 20.07,
		21.21, 22.18, 23.01, 23.76, 24.40, 25.78, 26.93, 27.87, 28.74, 29.53,
		30.16, 31.26, 32.24, 33.11, 33.86, 34.53,
	},
)

// KnTable is the bundle correction k_n for n = 2..20 parallel conductors.
var KnTable = MustIndexedTable("k_n", 2, []float64{
	0, 0.308, 0.621, 0.906, 1.18, 1.43, 1.66, 1.86, 2.05, 2.22,
	2.37, 2.51, 2.63, 2.74, 2.85, 2.95, 3.04, 3.14, 3.24,
})
