package clonology

// Kind classifies a value's shape and copy strategy
type Kind uint8

const (
	KindUnrecognized Kind = iota
	KindPrimitive
	KindObject
	KindArray
	KindFunction
	KindPattern
	KindInstant
	kindCount
)

var kindNames = [kindCount]string{
	KindUnrecognized: "unrecognized",
	KindPrimitive:    "primitive",
	KindObject:       "object",
	KindArray:        "array",
	KindFunction:     "function",
	KindPattern:      "pattern",
	KindInstant:      "instant",
}

// String returns kind name
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindUnrecognized]
	}
	return kindNames[k]
}

// IsComposite returns true for kinds with own properties and identity
func (k Kind) IsComposite() bool {
	switch k {
	case KindObject, KindArray, KindFunction, KindPattern, KindInstant:
		return true
	}
	return false
}

// KindOf returns the kind of the supplied value
func KindOf(value Value) Kind {
	switch actual := value.(type) {
	case nil, undefined, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return KindPrimitive
	case *Symbol:
		return KindPrimitive
	case *Object:
		return compositeOrNil(actual == nil, KindObject)
	case *Array:
		return compositeOrNil(actual == nil, KindArray)
	case *Function:
		return compositeOrNil(actual == nil, KindFunction)
	case *Pattern:
		return compositeOrNil(actual == nil, KindPattern)
	case *Instant:
		return compositeOrNil(actual == nil, KindInstant)
	}
	return KindUnrecognized
}

// typed nil composites carry no data, they behave like null
func compositeOrNil(isNil bool, kind Kind) Kind {
	if isNil {
		return KindPrimitive
	}
	return kind
}
