package native

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/viant/clonology"
	"github.com/viant/clonology/visitor"
)

// ErrUnsupportedKey is returned for map keys that cannot be used as property names
var ErrUnsupportedKey = errors.New("unsupported map key")

type (
	identity struct {
		rType reflect.Type
		ptr   uintptr
		len   int
	}

	importer struct {
		options *Options
		visited map[identity]clonology.Value
		pending map[identity]bool
	}
)

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.String:  reflect.TypeOf(""),
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
}

// Import converts native Go data into a value graph.
// The same Go pointer, map or slice always maps to the same composite, so aliasing and cycles are kept.
// Channels, unsafe pointers and functions other than clonology.Func are carried as opaque values.
func Import(value interface{}, options ...Option) (clonology.Value, error) {
	i := &importer{
		options: DefaultOptions().apply(options),
		visited: map[identity]clonology.Value{},
		pending: map[identity]bool{},
	}
	return i.importValue(value)
}

func (i *importer) importValue(value interface{}) (clonology.Value, error) {
	switch actual := value.(type) {
	case clonology.Func:
		return clonology.NewFunction(actual), nil
	case func(args ...interface{}) interface{}:
		return clonology.NewFunction(actual), nil
	case time.Time:
		return clonology.NewInstant(actual), nil
	case *time.Time:
		if actual == nil {
			return nil, nil
		}
		return clonology.NewInstant(*actual), nil
	case *regexp.Regexp:
		if actual == nil {
			return nil, nil
		}
		return i.importRegexp(actual)
	}
	if clonology.KindOf(value) != clonology.KindUnrecognized {
		return value, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			return nil, nil
		}
		if rValue.Type().Elem().Size() == 0 {
			return i.importValue(rValue.Elem().Interface())
		}
		key := identity{rType: rValue.Type(), ptr: rValue.Pointer()}
		if prior, ok := i.visited[key]; ok {
			return prior, nil
		}
		if rValue.Elem().Kind() != reflect.Struct {
			return i.importPointee(key, rValue.Elem())
		}
		object := clonology.NewObject()
		i.visited[key] = object
		return object, i.importStruct(value, rValue.Type().Elem(), object)
	case reflect.Struct:
		object := clonology.NewObject()
		return object, i.importStruct(value, rValue.Type(), object)
	case reflect.Map:
		if rValue.IsNil() {
			return nil, nil
		}
		key := identity{rType: rValue.Type(), ptr: rValue.Pointer()}
		if prior, ok := i.visited[key]; ok {
			return prior, nil
		}
		object := clonology.NewObject()
		i.visited[key] = object
		return object, i.importMap(value, object)
	case reflect.Slice:
		if rValue.IsNil() {
			return nil, nil
		}
		array := clonology.NewArray()
		if !hasOwnBacking(rValue) {
			return array, i.importSequence(value, array)
		}
		key := identity{rType: rValue.Type(), ptr: rValue.Pointer(), len: rValue.Len()}
		if prior, ok := i.visited[key]; ok {
			return prior, nil
		}
		i.visited[key] = array
		return array, i.importSequence(value, array)
	case reflect.Array:
		array := clonology.NewArray()
		return array, i.importSequence(value, array)
	}
	if basicType, ok := basicTypes[rValue.Kind()]; ok {
		return rValue.Convert(basicType).Interface(), nil
	}
	return value, nil
}

// importPointee imports the value behind a pointer to a non struct.
// A pointer reached again through itself holds no data of its own and imports as nil.
func (i *importer) importPointee(key identity, elem reflect.Value) (clonology.Value, error) {
	if i.pending[key] {
		return nil, nil
	}
	i.pending[key] = true
	imported, err := i.importValue(elem.Interface())
	delete(i.pending, key)
	if err != nil {
		return nil, err
	}
	i.visited[key] = imported
	return imported, nil
}

// hasOwnBacking returns false when the slice data pointer may be shared by unrelated slices
func hasOwnBacking(rValue reflect.Value) bool {
	return rValue.Cap() > 0 && rValue.Type().Elem().Size() > 0
}

func (i *importer) importRegexp(re *regexp.Regexp) (clonology.Value, error) {
	key := identity{rType: reflect.TypeOf(re), ptr: reflect.ValueOf(re).Pointer()}
	if prior, ok := i.visited[key]; ok {
		return prior, nil
	}
	pattern, err := clonology.NewPattern(re.String(), "")
	if err != nil {
		return nil, err
	}
	i.visited[key] = pattern
	return pattern, nil
}

func (i *importer) importStruct(value interface{}, rType reflect.Type, object *clonology.Object) error {
	visit, err := visitor.StructVisitorOf(value, structFields(rType, i.options))
	if err != nil {
		return err
	}
	return visit(func(key string, element interface{}) (bool, error) {
		imported, err := i.importValue(element)
		if err != nil {
			return false, fmt.Errorf("failed to import %v.%v: %w", rType.Name(), key, err)
		}
		object.Set(key, imported)
		return true, nil
	})
}

func (i *importer) importMap(value interface{}, object *clonology.Object) error {
	visit, err := visitor.AnyMapVisitorOf(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
	}
	return visit(func(key any, element any) (bool, error) {
		name, err := keyName(key)
		if err != nil {
			return false, err
		}
		imported, err := i.importValue(element)
		if err != nil {
			return false, fmt.Errorf("failed to import key %v: %w", name, err)
		}
		object.Set(name, imported)
		return true, nil
	})
}

func (i *importer) importSequence(value interface{}, array *clonology.Array) error {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return err
	}
	return visit(func(index int, element any) (bool, error) {
		imported, err := i.importValue(element)
		if err != nil {
			return false, fmt.Errorf("failed to import item %v: %w", index, err)
		}
		array.Push(imported)
		return true, nil
	})
}

func keyName(key interface{}) (string, error) {
	rValue := reflect.ValueOf(key)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'g', -1, 64), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
}
