package interpreter

import (
	"strconv"

	"github.com/leonardinius/lispcalc/internal/parser"
)

// Value alias, not type redefinition.
type Value = parser.Value

type (
	ValueNumber    uint32
	ValueSeparator string
)

// Type implements parser.Value.
func (v ValueNumber) Type() parser.ValueType {
	return parser.ValueNumberType
}

// String implements parser.Value.
func (v ValueNumber) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Type implements parser.Value.
func (v ValueSeparator) Type() parser.ValueType {
	return parser.ValueSeparatorType
}

// String implements parser.Value.
func (v ValueSeparator) String() string {
	return string(v)
}

var (
	_ Value = ValueNumber(0)
	_ Value = ValueSeparator("")
)
