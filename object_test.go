package clonology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	symbol := NewSymbol("id")
	props := &Properties{}
	props.Set("a", 1.0)
	props.SetKey(SymbolKey(symbol), 2.0)
	props.Define(StringKey("hidden"), 3.0, false)
	props.Set("b", 4.0)

	assert.Equal(t, []PropertyKey{StringKey("a"), SymbolKey(symbol), StringKey("b")}, props.Keys())
	assert.Equal(t, 4, props.Len())
	assert.True(t, props.HasOwn("hidden"))
	assert.False(t, props.IsEnumerable(StringKey("hidden")))
	value, ok := props.GetOwnKey(SymbolKey(symbol))
	assert.True(t, ok)
	assert.Equal(t, 2.0, value)

	assert.True(t, props.Delete("a"))
	assert.False(t, props.Delete("a"))
	assert.Equal(t, []PropertyKey{SymbolKey(symbol), StringKey("b")}, props.Keys())
	value, ok = props.GetOwn("b")
	assert.True(t, ok)
	assert.Equal(t, 4.0, value)
	value, ok = props.GetOwn("a")
	assert.False(t, ok)
	assert.True(t, IsUndefined(value))

	var visited []string
	props.Range(func(key PropertyKey, value Value) bool {
		visited = append(visited, key.String())
		return false
	})
	assert.Equal(t, []string{"[Symbol(id)]"}, visited)
	assert.True(t, SymbolKey(symbol).IsSymbol())
	assert.Equal(t, symbol, SymbolKey(symbol).Symbol())
	assert.Equal(t, "b", StringKey("b").Name())
}

func TestObject_Prototype(t *testing.T) {
	base := NewObject().With("name", "base")
	derived := ObjectWithPrototype(base).With("own", true)

	assert.Equal(t, "base", derived.Get("name"))
	assert.True(t, derived.Has("name"))
	assert.False(t, derived.HasOwn("name"))
	assert.True(t, IsUndefined(derived.Get("missing")))
	assert.Equal(t, []PropertyKey{StringKey("own")}, derived.Keys())

	err := base.SetPrototype(derived)
	assert.True(t, errors.Is(err, ErrCyclicPrototype))
	assert.Nil(t, base.Prototype())
	assert.Nil(t, derived.SetPrototype(nil))
	assert.False(t, derived.Has("name"))
}

func TestArray(t *testing.T) {
	array := NewArray(1.0)
	assert.Equal(t, 3, array.Push(2.0, 3.0))
	array.SetAt(5, 6.0)
	assert.Equal(t, 6, array.Len())
	assert.True(t, IsUndefined(array.At(4)))
	assert.True(t, IsUndefined(array.At(-1)))
	assert.Equal(t, 6.0, array.At(5))

	values := array.Values()
	values[0] = "changed"
	assert.Equal(t, 1.0, array.At(0))
}

func TestFunction_Call(t *testing.T) {
	assert.True(t, IsUndefined(NewFunction(nil).Call()))
	fn := NewFunction(func(args ...Value) Value { return len(args) })
	assert.Equal(t, 2, fn.Call(1, 2))
	assert.NotNil(t, fn.Body())
}

func TestSymbol(t *testing.T) {
	a, b := NewSymbol("x"), NewSymbol("x")
	assert.True(t, a != b)
	assert.Equal(t, "Symbol(x)", a.String())
	assert.Equal(t, "x", a.Description())
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(a, a))
}
