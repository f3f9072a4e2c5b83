package signal

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/internal/testutil"
)

const onePeriod = 20 * time.Millisecond // 50 Hz

func TestCreateSine(t *testing.T) {
	got, err := Create(ShapeSine, 8, onePeriod, 50, 1000.0, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := make([]float64, 8)
	for i := range want {
		want[i] = 1000 * math.Sin(2*math.Pi*float64(i)/8)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestCreateSinePhase(t *testing.T) {
	// 64/256 of a period turns the sine into a cosine.
	got, err := Create(ShapeSine, 16, onePeriod, 50, 2.0, 64)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := make([]float64, 16)
	for i := range want {
		want[i] = 2 * math.Cos(2*math.Pi*float64(i)/16)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestCreateSineInteger(t *testing.T) {
	got, err := Create[int32](ShapeSine, 8, onePeriod, 50, 1000, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := []int32{0, 707, 1000, 707, 0, -707, -1000, -707}
	for i := range want {
		if d := got[i] - want[i]; d < -1 || d > 1 {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCreateRectangle(t *testing.T) {
	tests := []struct {
		name  string
		phase uint8
		want  []int
	}{
		{name: "no phase", phase: 0, want: []int{-3, -3, -3, -3, 3, 3, 3, 3}},
		{name: "half period", phase: 128, want: []int{3, 3, 3, 3, -3, -3, -3, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Create(ShapeRectangle, 8, onePeriod, 50, 3, tt.phase)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("index %d: got %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCreateTriangle(t *testing.T) {
	got, err := Create(ShapeTriangle, 8, onePeriod, 50, 4.0, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 2, 0, -2, -4, -2, 0, 2}, 1e-12)

	shifted, err := Create(ShapeTriangle, 8, onePeriod, 50, 4.0, 64)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, shifted, []float64{0, -2, -4, -2, 0, 2, 4, 2}, 1e-12)
}

func TestCreateTriangleIntegerTruncates(t *testing.T) {
	got, err := Create(ShapeTriangle, 8, onePeriod, 50, 400, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 400 * 0.4999... truncates to 199.
	want := []int{400, 199, 0, -199, -400, -199, 0, 200}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCreateMultiplePeriods(t *testing.T) {
	got, err := Create(ShapeRectangle, 40, 100*time.Millisecond, 50, 1.0, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(got) != 40 {
		t.Fatalf("len = %d, want 40", len(got))
	}

	// Period boundaries are subject to float rounding, so allow one
	// sample to land on the other side.
	sum := 0.0
	for i, v := range got {
		if v != 1 && v != -1 {
			t.Fatalf("index %d: %v is not +-1", i, v)
		}
		sum += v
	}
	if math.Abs(sum) > 2 {
		t.Fatalf("rectangle over whole periods sums to %v, want about 0", sum)
	}
}

func TestCreateUnsupportedShape(t *testing.T) {
	for _, shape := range []Shape{Shape(-1), Shape(3), Shape(42)} {
		_, err := Create(shape, 8, onePeriod, 50, 1.0, 0)
		if !errors.Is(err, ErrUnsupportedShape) {
			t.Fatalf("Create(%v) error = %v, want ErrUnsupportedShape", shape, err)
		}
	}
}

func TestCreateInvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		samples  int
		duration time.Duration
		freq     float64
	}{
		{name: "zero samples", samples: 0, duration: onePeriod, freq: 50},
		{name: "negative samples", samples: -4, duration: onePeriod, freq: 50},
		{name: "zero duration", samples: 8, duration: 0, freq: 50},
		{name: "zero frequency", samples: 8, duration: onePeriod, freq: 0},
		{name: "nan frequency", samples: 8, duration: onePeriod, freq: math.NaN()},
		{name: "inf frequency", samples: 8, duration: onePeriod, freq: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Create(ShapeSine, tt.samples, tt.duration, tt.freq, 1.0, 0)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrUnsupportedShape) {
				t.Fatalf("unexpected ErrUnsupportedShape: %v", err)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	names := map[Shape]string{
		ShapeSine:      "sine",
		ShapeRectangle: "rectangle",
		ShapeTriangle:  "triangle",
		Shape(9):       "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Fatalf("Shape(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	testutil.RequireSliceNearlyEqual(t, s, testutil.DeterministicSine(1000, 48000, 1, 64), 1e-9)
}

func TestWaveformMatchesCreate(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(400))

	got, err := g.Waveform(ShapeTriangle, 50, 2, 32, 8)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}
	want, err := Create(ShapeTriangle, 8, onePeriod, 50, 2.0, 32)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestWaveformUnsupportedShape(t *testing.T) {
	_, err := NewGenerator().Waveform(Shape(7), 50, 1, 0, 8)
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("Waveform() error = %v, want ErrUnsupportedShape", err)
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	testutil.RequireFinite(t, n1)
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestWhiteNoiseInvalid(t *testing.T) {
	g := NewGenerator()
	if _, err := g.WhiteNoise(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestCreateUnsignedType(t *testing.T) {
	if _, err := Create[uint8](ShapeRectangle, 8, onePeriod, 50, 3, 0); !errors.Is(err, ErrUnsignedType) {
		t.Fatalf("Create[uint8]() error = %v, want ErrUnsignedType", err)
	}
	if _, err := Create[uint32](ShapeSine, 8, onePeriod, 50, 3, 0); !errors.Is(err, ErrUnsignedType) {
		t.Fatalf("Create[uint32]() error = %v, want ErrUnsignedType", err)
	}
	if _, err := Create[int8](ShapeRectangle, 8, onePeriod, 50, 3, 0); err != nil {
		t.Fatalf("Create[int8]() error = %v", err)
	}
}

func TestUniformInts(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(7))
	g2 := NewGeneratorWithOptions(nil, WithSeed(7))

	a, err := g1.UniformInts(1, 52, 500)
	if err != nil {
		t.Fatalf("UniformInts() error = %v", err)
	}
	b, err := g2.UniformInts(1, 52, 500)
	if err != nil {
		t.Fatalf("UniformInts() error = %v", err)
	}

	seen := make(map[int32]bool)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("mismatch at %d: %d != %d", i, a[i], b[i])
		}
		if a[i] < 1 || a[i] > 52 {
			t.Fatalf("index %d: %d outside [1, 52]", i, a[i])
		}
		seen[a[i]] = true
	}
	if len(seen) < 40 {
		t.Fatalf("only %d distinct values in 500 draws", len(seen))
	}

	single, err := g1.UniformInts(-4, -4, 3)
	if err != nil {
		t.Fatalf("UniformInts() error = %v", err)
	}
	for i, v := range single {
		if v != -4 {
			t.Fatalf("index %d: %d, want -4", i, v)
		}
	}
}

func TestUniformIntsInvalid(t *testing.T) {
	g := NewGenerator()
	if _, err := g.UniformInts(1, 52, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.UniformInts(5, 4, 8); err == nil {
		t.Fatal("expected error for empty range")
	}
}
