package core

// Saturating arithmetic for the integer instantiations of the stateful
// processors. On overflow the result sticks to the nearest end of T's range
// instead of wrapping. For float T these are the plain operators.

// SaturatingAdd returns a + b limited to the range of T.
func SaturatingAdd[T Number](a, b T) T {
	s := a + b
	if isFloat[T]() {
		return s
	}
	if b > 0 && s < a {
		_, hi := Bounds[T]()
		return hi
	}
	if b < 0 && s > a {
		lo, _ := Bounds[T]()
		return lo
	}
	return s
}

// SaturatingSub returns a - b limited to the range of T.
func SaturatingSub[T Number](a, b T) T {
	s := a - b
	if isFloat[T]() {
		return s
	}
	if b > 0 && s > a {
		lo, _ := Bounds[T]()
		return lo
	}
	if b < 0 && s < a {
		_, hi := Bounds[T]()
		return hi
	}
	return s
}

// SaturatingMul returns a * b limited to the range of T.
func SaturatingMul[T Number](a, b T) T {
	p := a * b
	if isFloat[T]() || a == 0 || b == 0 {
		return p
	}

	positive := (a < 0) == (b < 0)
	if p/b != a || positive != (p > 0) {
		lo, hi := Bounds[T]()
		if positive {
			return hi
		}
		return lo
	}
	return p
}

func isFloat[T Number]() bool {
	x := T(1)
	x /= 2
	return x != 0
}
