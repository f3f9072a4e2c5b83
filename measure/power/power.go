package power

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the power functions.
var (
	ErrEmpty          = errors.New("power: sample sequence is empty")
	ErrLengthMismatch = errors.New("power: voltage and current lengths differ")
)

// Result holds the power quantities of one voltage/current capture.
type Result struct {
	ActivePower   float64 // W, mean of v*i
	VoltageRMS    float64 // V
	CurrentRMS    float64 // A
	ApparentPower float64 // VA, VoltageRMS * CurrentRMS
	ReactivePower float64 // var, sqrt(S^2 - P^2), unsigned
	PowerFactor   float64 // P / S, zero when S is zero
}

// ActivePower returns the mean instantaneous power sum(v[k]*i[k]) / n.
func ActivePower(voltages, currents []float64) (float64, error) {
	if err := checkPair(voltages, currents); err != nil {
		return 0, err
	}
	return vecmath.DotProduct(voltages, currents) / float64(len(voltages)), nil
}

// RMSVoltage returns the root-mean-square of the voltage samples.
func RMSVoltage(voltages []float64) (float64, error) {
	if len(voltages) == 0 {
		return 0, fmt.Errorf("voltage: %w", ErrEmpty)
	}
	return rms(voltages), nil
}

// RMSCurrent returns the root-mean-square of the current samples.
func RMSCurrent(currents []float64) (float64, error) {
	if len(currents) == 0 {
		return 0, fmt.Errorf("current: %w", ErrEmpty)
	}
	return rms(currents), nil
}

// Analyze computes all Result quantities in one call.
func Analyze(voltages, currents []float64) (Result, error) {
	if err := checkPair(voltages, currents); err != nil {
		return Result{}, err
	}

	n := float64(len(voltages))
	r := Result{
		ActivePower: vecmath.DotProduct(voltages, currents) / n,
		VoltageRMS:  rms(voltages),
		CurrentRMS:  rms(currents),
	}
	r.ApparentPower = r.VoltageRMS * r.CurrentRMS

	if r.ApparentPower > 0 {
		r.PowerFactor = r.ActivePower / r.ApparentPower
	}
	r.ReactivePower = math.Sqrt(math.Max(r.ApparentPower*r.ApparentPower-r.ActivePower*r.ActivePower, 0))

	return r, nil
}

func checkPair(voltages, currents []float64) error {
	if len(voltages) != len(currents) {
		return fmt.Errorf("%w: %d voltage vs %d current samples", ErrLengthMismatch, len(voltages), len(currents))
	}
	if len(voltages) == 0 {
		return ErrEmpty
	}
	return nil
}

func rms(x []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}
