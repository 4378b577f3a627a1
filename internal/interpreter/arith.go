package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Arithmetic selects what happens when a result leaves the unsigned range.
type Arithmetic uint8

const (
	// ArithmeticChecked reports overflow and underflow as errors.
	ArithmeticChecked Arithmetic = iota
	// ArithmeticWrapping wraps around modulo 2^32.
	ArithmeticWrapping
)

func (a Arithmetic) String() string {
	switch a {
	case ArithmeticChecked:
		return "checked"
	case ArithmeticWrapping:
		return "wrapping"
	}
	return fmt.Sprintf("Arithmetic(%d)", uint8(a))
}

// ParseArithmetic parses the textual name of an arithmetic mode.
func ParseArithmetic(s string) (Arithmetic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "checked":
		return ArithmeticChecked, nil
	case "wrapping":
		return ArithmeticWrapping, nil
	}
	return 0, fmt.Errorf("unknown arithmetic mode %q (want checked or wrapping)", s)
}

// addChecked returns a+b and whether it did not wrap.
func addChecked[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	return sum, sum >= a
}

// subChecked returns a-b and whether it did not wrap.
func subChecked[T constraints.Unsigned](a, b T) (T, bool) {
	return a - b, b <= a
}
