// Package power computes electrical power quantities from sampled voltage
// and current waveforms.
//
// Inputs are plain float64 samples in volts and amperes taken at the same
// instants. Active power is the mean of the elementwise product, RMS values
// are the square root of the mean of squares:
//
//	p, err := power.ActivePower(volts, amps)
//	r, err := power.Analyze(volts, amps)
//	fmt.Printf("P = %.1f W, PF = %.3f\n", r.ActivePower, r.PowerFactor)
//
// Harmonics and THD decompose a buffer that spans a whole number of
// fundamental periods using an FFT.
package power
