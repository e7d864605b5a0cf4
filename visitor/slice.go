package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitor visits []E by index
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for []E
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit
}

// Visit iterates over the slice, calling the provided function for each element.
// The key is the slice index.
func (sw *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range sw.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnySliceVisitorOf creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return anyTypedSliceVisitorOf(actual), nil
	case []string:
		return anyTypedSliceVisitorOf(actual), nil
	case []int:
		return anyTypedSliceVisitorOf(actual), nil
	case []float64:
		return anyTypedSliceVisitorOf(actual), nil
	case []bool:
		return anyTypedSliceVisitorOf(actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	visit := SliceVisitorOf(slice)
	return func(f func(key int, element any) (bool, error)) error {
		return visit(func(key int, element E) (bool, error) {
			return f(key, element)
		})
	}
}

// AnySliceVisitor visits reflected slices and arrays
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice or array type via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
