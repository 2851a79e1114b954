package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSamePointerForSameName(t *testing.T) {
	tbl := NewSymbolTable()
	a := tbl.Intern("foo")
	b := tbl.Intern("foo")
	assert.Same(t, a, b)
}

func TestInternDistinguishesNames(t *testing.T) {
	tbl := NewSymbolTable()
	a := tbl.Intern("foo")
	b := tbl.Intern("bar")
	assert.NotSame(t, a, b)
}

func TestSeparateTablesDoNotShareIdentity(t *testing.T) {
	t1 := NewSymbolTable()
	t2 := NewSymbolTable()
	assert.NotSame(t, t1.Intern("foo"), t2.Intern("foo"))
}
