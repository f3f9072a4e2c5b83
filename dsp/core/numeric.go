package core

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

const defaultEpsilon = 1e-12

// Number is the numeric contract shared by the stateful processors.
//
// Integer instantiations truncate toward zero on every division, float
// instantiations round to nearest. Recurrences that divide on each step
// (moving average, scaled gains) behave differently between the two.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits value to the inclusive range [min, max].
// The caller guarantees min <= max; the result is unspecified otherwise.
func Clamp[T Number](value, min, max T) T {
	if value > max {
		return max
	}

	if value < min {
		return min
	}

	return value
}

// Bounds returns the lowest and highest finite values representable by T.
func Bounds[T Number]() (lo, hi T) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return fromInt[T](math.MinInt8), fromInt[T](math.MaxInt8)
	case reflect.Int16:
		return fromInt[T](math.MinInt16), fromInt[T](math.MaxInt16)
	case reflect.Int32:
		return fromInt[T](math.MinInt32), fromInt[T](math.MaxInt32)
	case reflect.Int:
		return fromInt[T](math.MinInt), fromInt[T](math.MaxInt)
	case reflect.Int64:
		return fromInt[T](math.MinInt64), fromInt[T](math.MaxInt64)
	case reflect.Uint8:
		return 0, fromUint[T](math.MaxUint8)
	case reflect.Uint16:
		return 0, fromUint[T](math.MaxUint16)
	case reflect.Uint32:
		return 0, fromUint[T](math.MaxUint32)
	case reflect.Uint, reflect.Uintptr:
		return 0, fromUint[T](math.MaxUint)
	case reflect.Uint64:
		return 0, fromUint[T](math.MaxUint64)
	case reflect.Float32:
		return fromFloat[T](-math.MaxFloat32), fromFloat[T](math.MaxFloat32)
	default:
		return fromFloat[T](-math.MaxFloat64), fromFloat[T](math.MaxFloat64)
	}
}

// fromInt, fromUint and fromFloat convert through a variable so that the
// constant is not checked against every type in T's type set.
func fromInt[T Number](v int64) T { return T(v) }

func fromUint[T Number](v uint64) T { return T(v) }

func fromFloat[T Number](v float64) T { return T(v) }

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// WithinRel reports whether got lies within rel * |want| of want.
func WithinRel(got, want, rel float64) bool {
	return math.Abs(got-want) <= math.Abs(want)*rel
}
