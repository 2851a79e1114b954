package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	env := NewEnvironment(nil)

	assert.True(t, env.Define(x, Int(1)))
	v, ok := env.Get(x)
	assert.True(t, ok)
	assert.Equal(t, Int(1), v)
}

func TestEnvironmentDefineRejectsRedefinitionInSameFrame(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	env := NewEnvironment(nil)

	assert.True(t, env.Define(x, Int(1)))
	assert.False(t, env.Define(x, Int(2)))
}

func TestEnvironmentGetWalksParentChain(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	parent := NewEnvironment(nil)
	parent.Define(x, Int(1))
	child := NewEnvironment(parent)

	v, ok := child.Get(x)
	assert.True(t, ok)
	assert.Equal(t, Int(1), v)
}

func TestEnvironmentGetUnboundFails(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	env := NewEnvironment(nil)

	_, ok := env.Get(x)
	assert.False(t, ok)
}

func TestEnvironmentSetRebindsInOwningFrame(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	parent := NewEnvironment(nil)
	parent.Define(x, Int(1))
	child := NewEnvironment(parent)

	assert.True(t, child.Set(x, Int(2)))

	v, _ := parent.Get(x)
	assert.Equal(t, Int(2), v)
	_, definedInChild := child.bindings[x]
	assert.False(t, definedInChild)
}

func TestEnvironmentSetUnboundFails(t *testing.T) {
	tbl := NewSymbolTable()
	x := tbl.Intern("x")
	env := NewEnvironment(nil)

	assert.False(t, env.Set(x, Int(1)))
}

func TestEnvironmentParent(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	assert.Nil(t, root.Parent())
	assert.Same(t, root, child.Parent())
}
