package clonology

import (
	"errors"
	"fmt"
)

// ErrCyclicPrototype is returned when a prototype link would form a cycle
var ErrCyclicPrototype = errors.New("cyclic prototype chain")

// Object represents a plain mapping from property key to value with an optional prototype link
type Object struct {
	Properties
	prototype *Object
}

// NewObject creates an object without prototype
func NewObject() *Object {
	return &Object{}
}

// ObjectWithPrototype creates an object inheriting from supplied prototype
func ObjectWithPrototype(prototype *Object) *Object {
	return &Object{prototype: prototype}
}

// Prototype returns prototype link or nil
func (o *Object) Prototype() *Object {
	return o.prototype
}

// SetPrototype sets prototype link
func (o *Object) SetPrototype(prototype *Object) error {
	for candidate := prototype; candidate != nil; candidate = candidate.prototype {
		if candidate == o {
			return fmt.Errorf("failed to set prototype: %w", ErrCyclicPrototype)
		}
	}
	o.prototype = prototype
	return nil
}

// Get returns own or inherited property value, Undefined if missing
func (o *Object) Get(name string) Value {
	return o.GetKey(StringKey(name))
}

// GetKey returns own or inherited property value for supplied key
func (o *Object) GetKey(key PropertyKey) Value {
	for candidate := o; candidate != nil; candidate = candidate.prototype {
		if value, ok := candidate.GetOwnKey(key); ok {
			return value
		}
	}
	return Undefined
}

// Has returns true if property is own or inherited
func (o *Object) Has(name string) bool {
	return o.HasKey(StringKey(name))
}

// HasKey returns true if key is own or inherited
func (o *Object) HasKey(key PropertyKey) bool {
	for candidate := o; candidate != nil; candidate = candidate.prototype {
		if candidate.HasOwnKey(key) {
			return true
		}
	}
	return false
}

// With sets property and returns the object, it simplifies literal construction
func (o *Object) With(name string, value Value) *Object {
	o.Set(name, value)
	return o
}
