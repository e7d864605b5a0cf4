package visitor

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// MapVisitor holds a map of type map[K]E and visits it in ascending key order.
type MapVisitor[K cmp.Ordered, E any] struct {
	data map[K]E
}

// MapVisitorOf creates a sorted visitor for a typed map
func MapVisitorOf[K cmp.Ordered, E any](aMap map[K]E) Visitor[K, E] {
	visitor := &MapVisitor[K, E]{data: aMap}
	return visitor.Visit
}

// Visit iterates over the map in ascending key order and calls f for each (key, element).
func (v *MapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	keys := make([]K, 0, len(v.data))
	for k := range v.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		continueVisit, err := f(k, v.data[k])
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnyMapVisitorOf creates a sorted visitor for any map value
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return anyTypedMapVisitorOf(actual), nil
	case map[string]string:
		return anyTypedMapVisitorOf(actual), nil
	case map[string]int:
		return anyTypedMapVisitorOf(actual), nil
	case map[string]bool:
		return anyTypedMapVisitorOf(actual), nil
	case map[string]float64:
		return anyTypedMapVisitorOf(actual), nil
	case map[int]interface{}:
		return anyTypedMapVisitorOf(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if !isOrderedKind(val.Type().Key().Kind()) {
		return nil, fmt.Errorf("unsupported map key type: %v", val.Type().Key())
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedMapVisitorOf[K cmp.Ordered, V any](aMap map[K]V) Visitor[any, any] {
	visit := MapVisitorOf(aMap)
	return func(f func(key any, element any) (bool, error)) error {
		return visit(func(key K, element V) (bool, error) {
			return f(key, element)
		})
	}
}

// AnyMapVisitor visits a reflected map with ordered key kind
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection in ascending key order.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	slices.SortFunc(keys, compareKeys)
	for _, key := range keys {
		continueVisit, err := f(key.Interface(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func isOrderedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		}
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return 0
}
