// Package pid provides a discrete-time PID controller with output clamping
// and integral anti-windup for fixed-cadence control loops.
//
// The controller does not track time. Update must be called exactly once
// per control tick and the integral and derivative gains are expected to be
// pre-scaled for that tick interval.
//
// Each tick computes
//
//	p   = Kp * e
//	d   = (e - e[n-1]) * Kd
//	acc = acc + e * Ki
//	out = clamp(p + d + acc, Min, Max)
//	acc = clamp(acc, Min, Max)
//
// The last step keeps the integral accumulator inside the output range while
// the actuator is saturated, so recovery after the error changes sign takes a
// bounded number of ticks.
//
// Controllers are generic over [core.Number]. Integer instantiations are
// exact; float instantiations round per IEEE 754. A Controller is not safe
// for concurrent use.
package pid
