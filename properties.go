package clonology

type (
	//PropertyKey represents a property key, either a string name or a symbol
	PropertyKey struct {
		name   string
		symbol *Symbol
	}

	property struct {
		key        PropertyKey
		value      Value
		enumerable bool
	}

	//Properties represents insertion ordered own properties of a composite value
	Properties struct {
		items []property
		index map[PropertyKey]int
	}
)

// StringKey returns a string property key
func StringKey(name string) PropertyKey {
	return PropertyKey{name: name}
}

// SymbolKey returns a symbol property key
func SymbolKey(symbol *Symbol) PropertyKey {
	return PropertyKey{symbol: symbol}
}

// IsSymbol returns true for symbol keys
func (k PropertyKey) IsSymbol() bool {
	return k.symbol != nil
}

// Name returns string key name
func (k PropertyKey) Name() string {
	return k.name
}

// Symbol returns symbol or nil for string keys
func (k PropertyKey) Symbol() *Symbol {
	return k.symbol
}

func (k PropertyKey) String() string {
	if k.symbol != nil {
		return "[" + k.symbol.String() + "]"
	}
	return k.name
}

// Set sets enumerable property value, existing property keeps its position and flag
func (p *Properties) Set(name string, value Value) {
	p.SetKey(StringKey(name), value)
}

// SetKey sets enumerable property value for supplied key
func (p *Properties) SetKey(key PropertyKey, value Value) {
	if pos, ok := p.index[key]; ok {
		p.items[pos].value = value
		return
	}
	p.add(property{key: key, value: value, enumerable: true})
}

// Define defines property with explicit enumerable flag
func (p *Properties) Define(key PropertyKey, value Value, enumerable bool) {
	if pos, ok := p.index[key]; ok {
		p.items[pos].value = value
		p.items[pos].enumerable = enumerable
		return
	}
	p.add(property{key: key, value: value, enumerable: enumerable})
}

func (p *Properties) add(prop property) {
	if p.index == nil {
		p.index = make(map[PropertyKey]int)
	}
	p.index[prop.key] = len(p.items)
	p.items = append(p.items, prop)
}

// GetOwn returns own property value
func (p *Properties) GetOwn(name string) (Value, bool) {
	return p.GetOwnKey(StringKey(name))
}

// GetOwnKey returns own property value for supplied key
func (p *Properties) GetOwnKey(key PropertyKey) (Value, bool) {
	pos, ok := p.index[key]
	if !ok {
		return Undefined, false
	}
	return p.items[pos].value, true
}

// HasOwn returns true if property is declared on this instance
func (p *Properties) HasOwn(name string) bool {
	_, ok := p.index[StringKey(name)]
	return ok
}

// HasOwnKey returns true if property key is declared on this instance
func (p *Properties) HasOwnKey(key PropertyKey) bool {
	_, ok := p.index[key]
	return ok
}

// IsEnumerable returns true if own property exists and is enumerable
func (p *Properties) IsEnumerable(key PropertyKey) bool {
	pos, ok := p.index[key]
	return ok && p.items[pos].enumerable
}

// Delete removes own property, it returns false if property was missing
func (p *Properties) Delete(name string) bool {
	return p.DeleteKey(StringKey(name))
}

// DeleteKey removes own property for supplied key
func (p *Properties) DeleteKey(key PropertyKey) bool {
	pos, ok := p.index[key]
	if !ok {
		return false
	}
	delete(p.index, key)
	p.items = append(p.items[:pos], p.items[pos+1:]...)
	for i := pos; i < len(p.items); i++ {
		p.index[p.items[i].key] = i
	}
	return true
}

// Keys returns own enumerable keys in insertion order
func (p *Properties) Keys() []PropertyKey {
	var result = make([]PropertyKey, 0, len(p.items))
	for _, item := range p.items {
		if item.enumerable {
			result = append(result, item.key)
		}
	}
	return result
}

// Range calls fn for each own enumerable property until fn returns false
func (p *Properties) Range(fn func(key PropertyKey, value Value) bool) {
	for i := 0; i < len(p.items); i++ {
		item := p.items[i]
		if !item.enumerable {
			continue
		}
		if !fn(item.key, item.value) {
			return
		}
	}
}

// Len returns number of own properties, including not enumerable
func (p *Properties) Len() int {
	return len(p.items)
}

func (p *Properties) properties() *Properties {
	return p
}

// owner is implemented by every composite embedding Properties
type owner interface {
	properties() *Properties
}
