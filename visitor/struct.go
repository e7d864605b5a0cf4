package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	//Field represents a visited struct field, holders locate inlined embedded structs
	Field struct {
		Name    string
		holders []*xunsafe.Field
		field   *xunsafe.Field
	}

	//Fields represents a struct field plan
	Fields []*Field

	// StructVisitor visits struct fields in plan order
	StructVisitor struct {
		value  interface{}
		ptr    unsafe.Pointer
		fields Fields
	}
)

// NewField creates a field plan entry, holders are embedded struct fields leading to the field
func NewField(name string, field reflect.StructField, holders ...reflect.StructField) *Field {
	ret := &Field{Name: name, field: xunsafe.NewField(field)}
	for _, holder := range holders {
		ret.holders = append(ret.holders, xunsafe.NewField(holder))
	}
	return ret
}

// Value returns field value for supplied struct pointer
func (f *Field) Value(structPtr unsafe.Pointer) interface{} {
	for _, holder := range f.holders {
		structPtr = holder.Pointer(structPtr)
	}
	return f.field.Value(structPtr)
}

// StructVisitorOf creates a visitor from a struct or pointer to struct and its field plan
func StructVisitorOf(value interface{}, fields Fields) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected non nil pointer, got %T", value)
		}
	case reflect.Struct:
		rPointer := reflect.New(valueType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	visitor := &StructVisitor{
		value:  value,
		ptr:    xunsafe.AsPointer(value),
		fields: fields,
	}
	return visitor.Visit, nil
}

// Visit iterates over planned fields, calling the provided function with each field name and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, field := range w.fields {
		continueVisit, err := f(field.Name, field.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
