package interpreter_test

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/leonardinius/lispcalc/internal/calcerrors"
	"github.com/leonardinius/lispcalc/internal/interpreter"
	"github.com/leonardinius/lispcalc/internal/parser"
	"github.com/leonardinius/lispcalc/internal/scanner"
	"github.com/leonardinius/lispcalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

func TestInterpret(t *testing.T) {
	testcases := []struct {
		name string
		in   string // Input
		eval string // Expected eval
		err  string // Expected error
		kind calcerrors.Kind
	}{
		{name: `literal`, in: `7`, eval: `7`},
		{name: `multi digit literal`, in: `12`, eval: `12`},
		{name: `leading zeroes`, in: `007`, eval: `7`},
		{name: `separator`, in: ` `, eval: ` `},
		{name: `grouped`, in: `(5)`, eval: `5`},
		{name: `nested groups`, in: `(((5)))`, eval: `5`},
		{name: `plus`, in: `+ 2 3`, eval: `5`},
		{name: `plus three`, in: `+ 2 3 4`, eval: `9`},
		{name: `plus one`, in: `+ 2`, eval: `2`},
		{name: `plus nothing`, in: `+ `, eval: `0`},
		{name: `minus`, in: `- 10 3`, eval: `7`},
		{name: `minus fold`, in: `- 10 3 2`, eval: `5`},
		{name: `minus one`, in: `- 10`, eval: `10`},
		{name: `minus to zero`, in: `- 5 5`, eval: `0`},
		{name: `grouped operation`, in: `(+ 1 2)`, eval: `3`},
		{name: `trailing group`, in: `+ 1 (+ 2 3)`, eval: `6`},
		{name: `nested operations`, in: `(- (+ 7 3) 2 (+ 1 1))`, eval: `6`},
		{name: `deep nesting`, in: `+ 1 (+ 1 (+ 1 (+ 1 (1))))`, eval: `5`},
		{name: `leading space`, in: ` + 2 3`, eval: `5`},
		{name: `group separator operand`, in: `+ 4 ( ) 5`, eval: `9`},
		{name: `max value`, in: `+ 4294967294 1`, eval: `4294967295`},
		{name: `underflow`, in: `- 3 10`, err: `[line 1] Error at '-': Subtraction underflows below zero.`, kind: calcerrors.NumericError},
		{name: `nested underflow`, in: `+ 1 (- 0 1)`, err: `Subtraction underflows below zero.`, kind: calcerrors.NumericError},
		{name: `overflow`, in: `+ 4294967295 1`, err: `[line 1] Error at '+': Addition overflows unsigned 32-bit range.`, kind: calcerrors.NumericError},
		{name: `minus nothing`, in: `- `, err: `Operator '-' requires at least one operand.`, kind: calcerrors.EvaluationError},
		{name: `unexpected character`, in: `+ 1 a`, err: `[line 1] Error: Unexpected character 'a'`, kind: calcerrors.LexicalError},
		{name: `missing space`, in: `+1`, err: `Expect space after operator.`, kind: calcerrors.SyntaxError},
		{name: `unmatched paren`, in: `(+ 1 2`, err: `Expect ')' after expression.`, kind: calcerrors.SyntaxError},
		{name: `literal too large`, in: `4294967296`, err: `Number literal too large.`, kind: calcerrors.NumericError},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := interpreter.Run(tc.in)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				kind, ok := calcerrors.KindOf(err)
				assert.True(t, ok)
				assert.Equal(t, tc.kind, kind)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.eval, output)
			}
		})
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []uint32{0, 1, 9, 10, 99, 100, 65535, 65536, math.MaxUint32 - 1, math.MaxUint32}
	for n := uint64(1); n < math.MaxUint32; n = n*7 + 3 {
		samples = append(samples, uint32(n))
	}

	for _, n := range samples {
		in := strconv.FormatUint(uint64(n), 10)
		out, err := interpreter.Run(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestAdditionIsCommutativeAndAssociative(t *testing.T) {
	t.Parallel()

	pairs := [][2]uint32{{2, 3}, {0, 7}, {100, 23}, {1 << 31, 1<<31 - 1}}
	for _, p := range pairs {
		ab, err := interpreter.Run(fmt.Sprintf("+ %d %d", p[0], p[1]))
		require.NoError(t, err)
		ba, err := interpreter.Run(fmt.Sprintf("+ %d %d", p[1], p[0]))
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	}

	flat, err := interpreter.Run("+ 1 2 3")
	require.NoError(t, err)
	left, err := interpreter.Run("+ (+ 1 2) 3")
	require.NoError(t, err)
	right, err := interpreter.Run("+ 1 (+ 2 3)")
	require.NoError(t, err)
	assert.Equal(t, flat, left)
	assert.Equal(t, flat, right)
}

func TestSubtractionIsOrderDependent(t *testing.T) {
	t.Parallel()

	expectations := map[string]string{
		"- 10 3 2":     "5",
		"- 10 2 3":     "5",
		"- 10 (- 3 2)": "9",
		"- 20 10 5 5":  "0",
	}

	inputs := maps.Keys(expectations)
	slices.Sort(inputs)
	for _, in := range inputs {
		out, err := interpreter.Run(in)
		require.NoError(t, err, in)
		assert.Equal(t, expectations[in], out, in)
	}

	_, err := interpreter.Run("- 3 10")
	assert.ErrorIs(t, err, calcerrors.ErrRuntimeUnderflow)
}

func TestWrappingArithmetic(t *testing.T) {
	t.Parallel()

	wrap := interpreter.WithArithmetic(interpreter.ArithmeticWrapping)

	out, err := interpreter.Run("+ 4294967295 2", wrap)
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	out, err = interpreter.Run("- 3 10", wrap)
	require.NoError(t, err)
	assert.Equal(t, "4294967289", out)
}

func TestParseArithmetic(t *testing.T) {
	t.Parallel()

	for in, expected := range map[string]interpreter.Arithmetic{
		"":          interpreter.ArithmeticChecked,
		"checked":   interpreter.ArithmeticChecked,
		" Wrapping": interpreter.ArithmeticWrapping,
	} {
		a, err := interpreter.ParseArithmetic(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, a, in)
	}

	_, err := interpreter.ParseArithmetic("saturating")
	assert.ErrorContains(t, err, `unknown arithmetic mode "saturating"`)
}

func TestReservedOperatorsAreUnknown(t *testing.T) {
	t.Parallel()

	for _, tt := range []token.TokenType{token.STAR, token.SLASH} {
		expr := &parser.Binary{
			Operator: token.NewToken(tt, "?", 1, 1),
			Operands: []parser.Expr{&parser.Literal{Value: 6}, &parser.Literal{Value: 3}},
		}

		_, err := interpreter.NewInterpreter().Interpret(expr)
		assert.ErrorIs(t, err, calcerrors.ErrRuntimeUnknownOperation)
		assert.ErrorContains(t, err, "[line 1] Error at '?': Unknown operation.")

		kind, ok := calcerrors.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, calcerrors.EvaluationError, kind)
	}
}

func TestEvaluateValueTypes(t *testing.T) {
	t.Parallel()

	i := interpreter.NewInterpreter()

	tokens, err := scanner.NewScanner("(+ 1 2)").Scan()
	require.NoError(t, err)
	expr, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)

	v, err := i.Evaluate(expr)
	require.NoError(t, err)
	assert.Equal(t, parser.ValueNumberType, v.Type())
	assert.Equal(t, interpreter.ValueNumber(3), v)

	v, err = i.Evaluate(&parser.Separator{Text: " "})
	require.NoError(t, err)
	assert.Equal(t, parser.ValueSeparatorType, v.Type())
	assert.Equal(t, " ", v.String())
}

func TestInterpreterResetsBetweenCalls(t *testing.T) {
	t.Parallel()

	i := interpreter.NewInterpreter()
	bad := &parser.Binary{
		Operator: token.NewToken(token.MINUS, "-", 1, 1),
		Operands: []parser.Expr{&parser.Literal{Value: 1}, &parser.Literal{Value: 2}},
	}

	_, err := i.Interpret(bad)
	require.Error(t, err)

	out, err := i.Interpret(&parser.Literal{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}
