package pid

import "github.com/cwbudde/algo-ctrl/dsp/core"

// Limits bounds the controller output and the integral accumulator.
// Min must not exceed Max.
type Limits[T core.Number] struct {
	Max T
	Min T
}

// Channel configures the integral or derivative path: K is the gain and
// Init the state the channel starts from and returns to on Reset.
type Channel[T core.Number] struct {
	K    T
	Init T
}

// Gains is the full gain set of a controller.
type Gains[T core.Number] struct {
	Kp         T
	Integral   Channel[T]
	Derivative Channel[T]
}

// Option configures a Controller at construction time.
type Option[T core.Number] func(*config[T])

type config[T core.Number] struct {
	limits     Limits[T]
	integral   Channel[T]
	derivative Channel[T]
}

// WithLimits sets the output range. Defaults to the full range of T.
func WithLimits[T core.Number](max, min T) Option[T] {
	return func(cfg *config[T]) {
		cfg.limits = Limits[T]{Max: max, Min: min}
	}
}

// WithIntegral sets the integral gain and the initial accumulator value.
func WithIntegral[T core.Number](k, init T) Option[T] {
	return func(cfg *config[T]) {
		cfg.integral = Channel[T]{K: k, Init: init}
	}
}

// WithDerivative sets the derivative gain and the initial error memory.
func WithDerivative[T core.Number](k, init T) Option[T] {
	return func(cfg *config[T]) {
		cfg.derivative = Channel[T]{K: k, Init: init}
	}
}

// Controller is a single-input single-output PID controller.
type Controller[T core.Number] struct {
	gains  Gains[T]
	limits Limits[T]

	integral T
	prevErr  T
	out      T
}

// New returns a controller with proportional gain kp. Without options the
// integral and derivative paths are disabled and the output is limited only
// by the range of T.
func New[T core.Number](kp T, opts ...Option[T]) *Controller[T] {
	lo, hi := core.Bounds[T]()
	cfg := config[T]{limits: Limits[T]{Max: hi, Min: lo}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Controller[T]{
		gains: Gains[T]{
			Kp:         kp,
			Integral:   cfg.integral,
			Derivative: cfg.derivative,
		},
		limits:   cfg.limits,
		integral: cfg.integral.Init,
		prevErr:  cfg.derivative.Init,
	}
}

// Update runs one control step on the error e and returns the clamped
// output. For integer T every intermediate saturates at the range of T
// rather than wrapping, so the clamps never see a sign-flipped value.
func (c *Controller[T]) Update(e T) T {
	p := core.SaturatingMul(c.gains.Kp, e)

	d := core.SaturatingMul(core.SaturatingSub(e, c.prevErr), c.gains.Derivative.K)
	c.prevErr = e

	c.integral = core.SaturatingAdd(c.integral, core.SaturatingMul(e, c.gains.Integral.K))

	sum := core.SaturatingAdd(core.SaturatingAdd(p, d), c.integral)
	c.out = core.Clamp(sum, c.limits.Min, c.limits.Max)
	c.antiWindup()

	return c.out
}

// antiWindup pulls the integral accumulator back into the output range.
func (c *Controller[T]) antiWindup() {
	c.integral = core.Clamp(c.integral, c.limits.Min, c.limits.Max)
}

// ProcessInPlace runs Update on every element of buf, replacing each error
// sample with the controller output for that tick.
func (c *Controller[T]) ProcessInPlace(buf []T) {
	for i, e := range buf {
		buf[i] = c.Update(e)
	}
}

// Output returns the result of the last Update, or zero before the first.
func (c *Controller[T]) Output() T {
	return c.out
}

// Integral returns the current integral accumulator.
func (c *Controller[T]) Integral() T {
	return c.integral
}

// Reset restores the integral and derivative state to their initial values.
// Gains, limits and Output are left unchanged.
func (c *Controller[T]) Reset() {
	c.integral = c.gains.Integral.Init
	c.prevErr = c.gains.Derivative.Init
}

// Gains returns the controller gains.
func (c *Controller[T]) Gains() Gains[T] {
	return c.gains
}

// Limits returns the output limits.
func (c *Controller[T]) Limits() Limits[T] {
	return c.limits
}
