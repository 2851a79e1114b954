package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NilValue))
	assert.False(t, Truthy(FalseValue))
	assert.True(t, Truthy(TrueValue))
	assert.True(t, Truthy(Int(0)))
	assert.True(t, Truthy(String("")))
}

func TestBoolValueReturnsSingletons(t *testing.T) {
	assert.Equal(t, TrueValue, BoolValue(true))
	assert.True(t, BoolValue(true) == TrueValue)
	assert.True(t, BoolValue(false) == FalseValue)
}

func TestStringRoundTripsEscapes(t *testing.T) {
	s := String("a\n\t\x00\"\\b")
	assert.Equal(t, `"a\n\t\0\"\\b"`, s.String())
	assert.Equal(t, "a\n\t\x00\"\\b", s.Raw())
}

func TestListHelpers(t *testing.T) {
	lst := SliceToList([]Value{Int(1), Int(2), Int(3)})
	assert.True(t, IsProperList(lst))
	assert.Equal(t, 3, ListLength(lst))
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, ListToSlice(lst))
	assert.Equal(t, "(1 2 3)", lst.String())
}

func TestImproperListIsNotProper(t *testing.T) {
	improper := NewPair(Int(1), Int(2))
	assert.False(t, IsProperList(improper))
	assert.Equal(t, "(1 . 2)", improper.String())
}

func TestSpecForParamsFixedAndVariadic(t *testing.T) {
	tbl := NewSymbolTable()
	a, b, rest := tbl.Intern("a"), tbl.Intern("b"), tbl.Intern("rest")

	fixed := SliceToList([]Value{a, b})
	spec, ok := SpecForParams(fixed)
	assert.True(t, ok)
	assert.Equal(t, []*Symbol{a, b}, spec.Fixed)
	assert.Nil(t, spec.Variadic)

	variadic := NewPair(a, rest)
	spec, ok = SpecForParams(variadic)
	assert.True(t, ok)
	assert.Equal(t, []*Symbol{a}, spec.Fixed)
	assert.Same(t, rest, spec.Variadic)
}

func TestSpecForParamsRejectsNonSymbol(t *testing.T) {
	_, ok := SpecForParams(SliceToList([]Value{Int(1)}))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "pair", KindPair.String())
}
