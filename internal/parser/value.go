package parser

type ValueType uint

const (
	ValueNumberType ValueType = iota
	ValueSeparatorType
)

func (t ValueType) String() string {
	switch t {
	case ValueNumberType:
		return "number"
	case ValueSeparatorType:
		return "separator"
	}
	return "unknown"
}

// Value is the result of evaluating an Expr.
type Value interface {
	Type() ValueType
	String() string
}
