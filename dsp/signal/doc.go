// Package signal generates synthetic test signals for exercising control
// loops and measurement code: sine, rectangle and triangle waveforms with a
// phase offset in 1/256 period steps, plus seeded white noise.
package signal
