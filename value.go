package clonology

import "math"

type (
	//Value represents any value of the graph: a primitive, a composite or an opaque Go value
	Value = any

	undefined struct{}

	//Symbol represents a unique token, two symbols are equal only if they are the same instance
	Symbol struct {
		description string
	}
)

// Undefined represents an absent value, it is distinct from nil (null)
var Undefined Value = undefined{}

func (undefined) String() string {
	return "undefined"
}

// IsUndefined returns true if value is Undefined
func IsUndefined(value Value) bool {
	_, ok := value.(undefined)
	return ok
}

// IsNaN returns true if value is a floating point NaN
func IsNaN(value Value) bool {
	switch actual := value.(type) {
	case float64:
		return math.IsNaN(actual)
	case float32:
		return math.IsNaN(float64(actual))
	}
	return false
}

// NewSymbol creates a unique symbol
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns symbol description
func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}
