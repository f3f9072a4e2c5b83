// Package average provides an exponential moving-average filter for
// per-tick smoothing of measurements and controller outputs.
package average

import "github.com/cwbudde/algo-ctrl/dsp/core"

// MovingAverage is a first-order exponential smoothing filter implementing
//
//	y[n] = y[n-1] + (x[n] - y[n-1]) / scale
//
// The state is kept as acc = y * scale so that each step needs a single
// division. Larger scale values give slower, more damped responses.
//
// For integer T every division truncates toward zero; this truncation is
// what realises the decay without floating-point state, and the output may
// sit up to one unit below the true average. For float T the recurrence is
// exact up to rounding.
//
// scale must be non-zero. A MovingAverage is not safe for concurrent use.
type MovingAverage[T core.Number] struct {
	acc   T
	scale T
}

// New returns a filter whose output starts at initial.
func New[T core.Number](initial, scale T) *MovingAverage[T] {
	return &MovingAverage[T]{
		acc:   initial * scale,
		scale: scale,
	}
}

// Update feeds one sample and returns the smoothed output.
func (m *MovingAverage[T]) Update(x T) T {
	m.acc -= m.acc / m.scale
	m.acc += x
	return m.acc / m.scale
}

// ProcessInPlace smooths buf sample by sample, replacing each input with
// the filter output.
func (m *MovingAverage[T]) ProcessInPlace(buf []T) {
	for i, x := range buf {
		buf[i] = m.Update(x)
	}
}

// Output returns the current smoothed value without changing state.
func (m *MovingAverage[T]) Output() T {
	return m.acc / m.scale
}

// Reset discards the smoothing history and jumps the output to v.
func (m *MovingAverage[T]) Reset(v T) {
	m.acc = v * m.scale
}

// Scale returns the smoothing scale.
func (m *MovingAverage[T]) Scale() T {
	return m.scale
}
