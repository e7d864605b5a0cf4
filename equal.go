package clonology

import (
	"reflect"
)

type valuePair [2]Value

// Equal returns true if a and b are structurally equal.
// Composites compare by kind and own enumerable data, key order is ignored, prototypes are not compared.
// NaN equals NaN, symbols compare by identity, functions compare by body, unrecognized values use reflect.DeepEqual.
// Cycles are supported: a pair already under comparison is assumed equal.
func Equal(a, b Value) bool {
	seen := map[valuePair]bool{}
	pending := []valuePair{{a, b}}
	for len(pending) > 0 {
		last := len(pending) - 1
		next := pending[last]
		pending = pending[:last]
		var ok bool
		if pending, ok = compare(next[0], next[1], seen, pending); !ok {
			return false
		}
	}
	return true
}

func compare(a, b Value, seen map[valuePair]bool, pending []valuePair) ([]valuePair, bool) {
	kind := KindOf(a)
	if kind != KindOf(b) {
		return pending, false
	}
	switch kind {
	case KindPrimitive:
		if IsNaN(a) && IsNaN(b) {
			return pending, true
		}
		return pending, a == b
	case KindUnrecognized:
		return pending, reflect.DeepEqual(a, b)
	}
	if a == b {
		return pending, true
	}
	pair := valuePair{a, b}
	if seen[pair] {
		return pending, true
	}
	seen[pair] = true
	switch x := a.(type) {
	case *Array:
		y := b.(*Array)
		if len(x.elements) != len(y.elements) {
			return pending, false
		}
		for i := range x.elements {
			pending = append(pending, valuePair{x.elements[i], y.elements[i]})
		}
	case *Function:
		if funcPointer(x.body) != funcPointer(b.(*Function).body) {
			return pending, false
		}
	case *Pattern:
		y := b.(*Pattern)
		if x.source != y.source || x.flags != y.flags {
			return pending, false
		}
	case *Instant:
		if !x.at.Equal(b.(*Instant).at) {
			return pending, false
		}
	}
	return compareProperties(a.(owner).properties(), b.(owner).properties(), pending)
}

func compareProperties(a, b *Properties, pending []valuePair) ([]valuePair, bool) {
	keys := a.Keys()
	if len(keys) != len(b.Keys()) {
		return pending, false
	}
	for _, key := range keys {
		if !b.IsEnumerable(key) {
			return pending, false
		}
		x, _ := a.GetOwnKey(key)
		y, _ := b.GetOwnKey(key)
		pending = append(pending, valuePair{x, y})
	}
	return pending, true
}

func funcPointer(fn Func) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
