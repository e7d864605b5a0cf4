package clonology

// Array represents an ordered sequence of values, it may also carry extra own properties
type Array struct {
	Properties
	elements []Value
}

// NewArray creates an array with supplied elements
func NewArray(values ...Value) *Array {
	elements := make([]Value, len(values))
	copy(elements, values)
	return &Array{elements: elements}
}

// Len returns array length
func (a *Array) Len() int {
	return len(a.elements)
}

// At returns element at index or Undefined when out of range
func (a *Array) At(index int) Value {
	if index < 0 || index >= len(a.elements) {
		return Undefined
	}
	return a.elements[index]
}

// SetAt sets element at index, array grows with Undefined elements when needed
func (a *Array) SetAt(index int, value Value) {
	if index < 0 {
		return
	}
	for len(a.elements) <= index {
		a.elements = append(a.elements, Undefined)
	}
	a.elements[index] = value
}

// Push appends elements and returns new length
func (a *Array) Push(values ...Value) int {
	a.elements = append(a.elements, values...)
	return len(a.elements)
}

// Values returns a copy of array elements
func (a *Array) Values() []Value {
	result := make([]Value, len(a.elements))
	copy(result, a.elements)
	return result
}
