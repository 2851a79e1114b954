package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	syms := value.NewSymbolTable()
	r := New(src, syms)
	v, err := r.ReadExpr()
	require.NoError(t, err)

	return v
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		input    string
		expected value.Value
	}{
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{"3.14", value.Float(3.14)},
		{"-3.14", value.Float(-3.14)},
		{"#t", value.TrueValue},
		{"#f", value.FalseValue},
		{`"hi"`, value.String("hi")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mustRead(t, tt.input), tt.input)
	}
}

func TestReadSymbolInterning(t *testing.T) {
	syms := value.NewSymbolTable()
	r1 := New("foo", syms)
	r2 := New("foo", syms)
	a, err := r1.ReadExpr()
	require.NoError(t, err)
	b, err := r2.ReadExpr()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestReadProperList(t *testing.T) {
	v := mustRead(t, "(1 2 3)")
	require.True(t, value.IsProperList(v))
	assert.Equal(t, 3, value.ListLength(v))
	slice := value.ListToSlice(v)
	assert.Equal(t, value.Int(1), slice[0])
	assert.Equal(t, value.Int(2), slice[1])
	assert.Equal(t, value.Int(3), slice[2])
}

func TestReadEmptyList(t *testing.T) {
	v := mustRead(t, "()")
	assert.True(t, value.IsNil(v))
}

func TestReadImproperList(t *testing.T) {
	v := mustRead(t, "(1 2 . 3)")
	require.False(t, value.IsProperList(v))
	p := v.(*value.Pair)
	assert.Equal(t, value.Int(1), p.Car)
	p2 := p.Cdr.(*value.Pair)
	assert.Equal(t, value.Int(2), p2.Car)
	assert.Equal(t, value.Int(3), p2.Cdr)
}

func TestReadQuoteShorthand(t *testing.T) {
	v := mustRead(t, "'x")
	p := v.(*value.Pair)
	assert.Equal(t, "quote", p.Car.(*value.Symbol).Name)
	inner := p.Cdr.(*value.Pair).Car
	assert.Equal(t, "x", inner.(*value.Symbol).Name)
}

func TestReadQuasiquoteShorthands(t *testing.T) {
	for _, src := range []string{"`x", "@x"} {
		v := mustRead(t, src)
		p := v.(*value.Pair)
		assert.Equal(t, "quasiquote", p.Car.(*value.Symbol).Name, src)
	}
}

func TestReadUnquoteSplicing(t *testing.T) {
	v := mustRead(t, ",@x")
	p := v.(*value.Pair)
	assert.Equal(t, "unquote-splicing", p.Car.(*value.Symbol).Name)
}

func TestReadNestedList(t *testing.T) {
	v := mustRead(t, "(+ 1 (* 2 3))")
	slice := value.ListToSlice(v)
	require.Len(t, slice, 3)
	inner := value.ListToSlice(slice[2])
	require.Len(t, inner, 3)
}

func TestUnbalancedParenIsSyntaxError(t *testing.T) {
	syms := value.NewSymbolTable()
	_, err := New(")", syms).ReadExpr()
	require.Error(t, err)
	e, ok := err.(*errs.Err)
	require.True(t, ok)
	assert.Equal(t, errs.KindSyntax, e.Kind)
}

func TestImproperListCannotStartWithDot(t *testing.T) {
	syms := value.NewSymbolTable()
	_, err := New("(. 1)", syms).ReadExpr()
	require.Error(t, err)
	e, ok := err.(*errs.Err)
	require.True(t, ok)
	assert.Equal(t, errs.KindSyntax, e.Kind)
}

func TestUnterminatedListIsNotCleanEOF(t *testing.T) {
	syms := value.NewSymbolTable()
	_, err := New("(1 2", syms).ReadExpr()
	require.Error(t, err)
	assert.False(t, errs.IsCleanEOF(err))
}

func TestTopLevelEOFIsClean(t *testing.T) {
	syms := value.NewSymbolTable()
	_, err := New("   ", syms).ReadExpr()
	require.Error(t, err)
	assert.True(t, errs.IsCleanEOF(err))
}
