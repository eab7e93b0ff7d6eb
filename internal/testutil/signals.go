package testutil

import "math"

// DeterministicSine returns length samples of amplitude·sin(2π·freqHz·t).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Harmonics sums sines at multiples of fundamental. amplitudes[k] belongs to
// harmonic k+1.
func Harmonics(fundamental, sampleRate float64, amplitudes []float64, length int) []float64 {
	out := make([]float64, length)
	for k, a := range amplitudes {
		if a == 0 {
			continue
		}
		s := DeterministicSine(fundamental*float64(k+1), sampleRate, a, length)
		for i, v := range s {
			out[i] += v
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
