package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-ctrl/dsp/core"
)

// Errors returned by the generators.
var (
	// ErrUnsupportedShape is returned for a Shape outside the known set.
	ErrUnsupportedShape = errors.New("signal: unsupported signal shape")
	// ErrUnsignedType is returned when Create is instantiated with an
	// unsigned sample type, which cannot hold the negative half-wave.
	ErrUnsignedType = errors.New("signal: waveforms need a signed or float sample type")
)

// Shape selects the waveform produced by Create.
type Shape int

const (
	// ShapeSine is amplitude * sin(2*pi*f*t).
	ShapeSine Shape = iota
	// ShapeRectangle is -amplitude for the first half of each period and
	// +amplitude for the second half.
	ShapeRectangle
	// ShapeTriangle runs from +amplitude at the period start down to
	// -amplitude at mid-period and back.
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeRectangle:
		return "rectangle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

func validShape(s Shape) bool {
	return s >= ShapeSine && s <= ShapeTriangle
}

// Create returns samples values of the given shape evenly spaced over
// duration. Sample n is taken at
//
//	t = duration*n/samples + phase/256 * (1/freqHz)
//
// so phase counts 1/256 of a period. Values are computed in float64 and
// converted to T, which truncates toward zero for integer types. All shapes
// are bipolar, so T must be signed or float; unsigned T yields
// ErrUnsignedType.
func Create[T core.Number](shape Shape, samples int, duration time.Duration, freqHz float64, amplitude T, phase uint8) ([]T, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("signal duration must be > 0: %v", duration)
	}
	return generate(shape, samples, duration.Seconds(), freqHz, amplitude, phase)
}

func generate[T core.Number](shape Shape, samples int, seconds, freqHz float64, amplitude T, phase uint8) ([]T, error) {
	if !validShape(shape) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedShape, int(shape))
	}
	var zero T
	if one := T(1); zero-one > zero {
		return nil, ErrUnsignedType
	}
	if samples <= 0 {
		return nil, fmt.Errorf("signal samples must be > 0: %d", samples)
	}
	if !(freqHz > 0) || math.IsInf(freqHz, 1) {
		return nil, fmt.Errorf("signal frequency must be finite and > 0: %f", freqHz)
	}

	period := 1 / freqHz
	offset := period * float64(phase) / 256
	a := float64(amplitude)
	n := float64(samples)

	out := make([]T, samples)
	for i := range out {
		t := seconds*float64(i)/n + offset

		switch shape {
		case ShapeSine:
			out[i] = T(a * math.Sin(freqHz*t*2*math.Pi))
		case ShapeRectangle:
			if math.Mod(t, period)/period >= 0.5 {
				out[i] = amplitude
			} else {
				out[i] = -amplitude
			}
		case ShapeTriangle:
			tri := math.Abs(math.Mod(t, period)-period/2) - period/4
			out[i] = T(tri * 4 / period * a)
		}
	}
	return out, nil
}

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Waveform generates samples of the given shape at the configured sample
// rate, covering samples/SampleRate seconds. Phase follows Create.
func (g *Generator) Waveform(shape Shape, freqHz, amplitude float64, phase uint8, samples int) ([]float64, error) {
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	return generate(shape, samples, float64(samples)/g.cfg.SampleRate, freqHz, amplitude, phase)
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Waveform(ShapeSine, freqHz, amplitude, 0, samples)
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// UniformInts generates deterministic integers uniformly distributed in
// [lo, hi], seeded like WhiteNoise.
func (g *Generator) UniformInts(lo, hi int32, samples int) ([]int32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("uniform samples must be > 0: %d", samples)
	}
	if lo > hi {
		return nil, fmt.Errorf("uniform range is empty: [%d, %d]", lo, hi)
	}
	out := make([]int32, samples)
	span := int64(hi) - int64(lo) + 1
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = lo + int32(rng.Int63n(span))
	}
	return out, nil
}
