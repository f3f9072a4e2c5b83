package power

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by the harmonic analysis.
var (
	ErrInvalidPeriods = errors.New("power: periods must be >= 1")
	ErrInvalidOrder   = errors.New("power: harmonic order out of range")
	ErrNotPowerOfTwo  = errors.New("power: sample count must be a power of two")
	ErrNoFundamental  = errors.New("power: fundamental amplitude is zero")
)

// Harmonics returns the peak amplitudes of harmonics 1..maxOrder of x.
// x must cover exactly periods fundamental periods so that harmonic h falls
// on FFT bin h*periods; its length must be a power of two.
func Harmonics(x []float64, periods, maxOrder int) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmpty
	}
	if bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if periods < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriods, periods)
	}
	if maxOrder < 1 || maxOrder*periods >= n/2 {
		return nil, fmt.Errorf("%w: order %d with %d periods in %d samples", ErrInvalidOrder, maxOrder, periods, n)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("power: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("power: fft: %w", err)
	}

	amps := make([]float64, maxOrder)
	scale := 2 / float64(n)
	for h := range amps {
		c := out[(h+1)*periods]
		amps[h] = math.Hypot(real(c), imag(c)) * scale
	}
	return amps, nil
}

// THD returns the total harmonic distortion of x, the RMS sum of harmonics
// 2..maxOrder relative to the fundamental. Arguments follow Harmonics.
func THD(x []float64, periods, maxOrder int) (float64, error) {
	if maxOrder < 2 {
		return 0, fmt.Errorf("%w: THD needs maxOrder >= 2, got %d", ErrInvalidOrder, maxOrder)
	}

	amps, err := Harmonics(x, periods, maxOrder)
	if err != nil {
		return 0, err
	}
	if amps[0] == 0 {
		return 0, ErrNoFundamental
	}

	var sum float64
	for _, a := range amps[1:] {
		sum += a * a
	}
	return math.Sqrt(sum) / amps[0], nil
}
