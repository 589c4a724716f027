package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Calculator_01(t *testing.T) {
	checkEvaluate(t, "1", 1)
	checkEvaluate(t, "1.5", 1.5)
	checkEvaluate(t, ".5", 0.5)
	checkEvaluate(t, "2e3", 2000)
	checkEvaluate(t, "2.5E-1", 0.25)
}

func Test_Calculator_02(t *testing.T) {
	checkEvaluate(t, "1 + 2", 3)
	checkEvaluate(t, "1 - 2 - 3", -4)
	checkEvaluate(t, "2 * 3 + 4", 10)
	checkEvaluate(t, "2 + 3 * 4", 14)
	checkEvaluate(t, "(2 + 3) * 4", 20)
	checkEvaluate(t, "8 / 4 / 2", 1)
}

func Test_Calculator_03(t *testing.T) {
	checkEvaluate(t, "2 ^ 3", 8)
	checkEvaluate(t, "2 ** 3", 8)
	checkEvaluate(t, "2 ^ 3 ^ 2", 512)
	checkEvaluate(t, "-2 ^ 2", -4)
	checkEvaluate(t, "2 ^ -1", 0.5)
	checkEvaluate(t, "--1", 1)
	checkEvaluate(t, "+1", 1)
}

func Test_Calculator_04(t *testing.T) {
	checkEvaluate(t, "pi", math.Pi)
	checkEvaluate(t, "e", math.E)
	checkEvaluate(t, "sin(pi / 2)", 1)
	checkEvaluate(t, "cos(0)", 1)
	checkEvaluate(t, "sqrt(16)", 4)
	checkEvaluate(t, "atan2(1, 1)", math.Pi/4)
	checkEvaluate(t, "max(1, min(5, 3))", 3)
	checkEvaluate(t, "pow(2, 10)", 1024)
	checkEvaluate(t, "abs(-2) + sign(-3)", 1)
	checkEvaluate(t, "exp(ln(2))", 2)
}

func Test_Calculator_05(t *testing.T) {
	calc := NewCalculator()
	calc.Set("theta", 0.5)
	calc.Set("phi", 2)
	//
	value, err := calc.Evaluate("theta * phi + 1")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, value, 1e-12)
	// Overwrite
	calc.Set("theta", 1)
	value, err = calc.Evaluate("theta * phi + 1")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, value, 1e-12)
	//
	assert.Equal(t, []string{"phi", "theta"}, calc.Variables())
}

func Test_Calculator_06(t *testing.T) {
	var notSet *VariableNotSetError
	//
	_, err := NewCalculator().Evaluate("2 * theta")
	require.ErrorAs(t, err, &notSet)
	assert.Equal(t, "theta", notSet.Name)
}

func Test_Calculator_07(t *testing.T) {
	var divZero *DivisionByZeroError
	//
	_, err := NewCalculator().Evaluate("1 / (2 - 2)")
	assert.ErrorAs(t, err, &divZero)
}

func Test_Calculator_08(t *testing.T) {
	checkParseError(t, "")
	checkParseError(t, "   ")
	checkParseError(t, "1 +")
	checkParseError(t, "(1 + 2")
	checkParseError(t, "1 2")
	checkParseError(t, "1 $ 2")
	checkParseError(t, "foo(1)")
	checkParseError(t, "sin(1, 2)")
	checkParseError(t, "max(1)")
	checkParseError(t, "max(1 2)")
	checkParseError(t, "sin(")
}

func Test_Calculator_09(t *testing.T) {
	var perr *ParseError
	//
	_, err := Parse("1 + foo(2)")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "unknown function", perr.Err.Message())
	assert.Equal(t, "1 + foo(2)\n    ^^^", perr.Err.Highlight())
}

func Test_Calculator_10(t *testing.T) {
	term, err := Parse("a * (b + sin(c)) - a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "a"}, term.Variables(nil))
	assert.Equal(t, "((a * (b + sin(c))) - a)", term.String())
}

func Test_Calculator_11(t *testing.T) {
	calc := NewCalculator()
	calc.Set("x", 3)
	//
	f, err := calc.Substitute(NewSymbol("x ^ 2"))
	require.NoError(t, err)
	assert.Equal(t, NewFloat(9), f)
	// Concrete values are unchanged
	f, err = calc.Substitute(NewFloat(1.5))
	require.NoError(t, err)
	assert.Equal(t, NewFloat(1.5), f)
	// Unbound variables
	_, err = calc.Substitute(NewSymbol("y"))
	assert.Error(t, err)
}

func Test_Calculator_12(t *testing.T) {
	calc := NewCalculator()
	calc.Set("x", 1)
	clone := calc.Clone()
	clone.Set("x", 2)
	//
	v, _ := calc.Get("x")
	assert.Equal(t, 1.0, v)
	v, _ = clone.Get("x")
	assert.Equal(t, 2.0, v)
	//
	_, ok := calc.Get("y")
	assert.False(t, ok)
}

func Test_Cache_01(t *testing.T) {
	cache := NewCache(2)
	calc := NewCalculatorWithCache(cache)
	//
	for _, expr := range []string{"1 + 1", "1 + 1", "2 + 2", "3 + 3"} {
		_, err := calc.Evaluate(expr)
		require.NoError(t, err)
	}
	// Bounded by capacity
	assert.Equal(t, 2, cache.Len())
	// Failures are not cached
	_, err := calc.Evaluate("1 +")
	assert.Error(t, err)
	assert.Equal(t, 2, cache.Len())
}

func Test_Cache_02(t *testing.T) {
	cache := NewCache(0)
	//
	term, err := cache.Parse("1 + 1")
	require.NoError(t, err)
	assert.Equal(t, "(1 + 1)", term.String())
	assert.Equal(t, 0, cache.Len())
	// A nil cache also works
	value, err := NewCalculatorWithCache(nil).Evaluate("2 * 2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, value)
}

// ============================================================================
// Helpers
// ============================================================================

func checkEvaluate(t *testing.T, expr string, expected float64) {
	t.Helper()
	//
	value, err := NewCalculator().Evaluate(expr)
	require.NoError(t, err, expr)
	assert.InDelta(t, expected, value, 1e-12, expr)
}

func checkParseError(t *testing.T, expr string) {
	var perr *ParseError
	//
	t.Helper()
	//
	_, err := NewCalculator().Evaluate(expr)
	require.Error(t, err, expr)
	assert.True(t, errors.As(err, &perr), expr)
}

func Test_Calculator_13(t *testing.T) {
	var exprs []string
	// Parsers are swappable
	parser := ParserFunc(func(expr string) (Term, error) {
		exprs = append(exprs, expr)
		return Parse(expr)
	})
	calc := NewCalculatorWithParser(parser)
	//
	value, err := calc.Evaluate(" 1 + 2 ")
	require.NoError(t, err)
	assert.Equal(t, 3.0, value)
	assert.Equal(t, []string{"1 + 2"}, exprs)
}
