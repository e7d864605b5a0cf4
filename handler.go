package clonology

// handler creates an empty clone shell for a composite kind and later fills it with cloned children
type handler interface {
	shell(source Value) Value
	fill(s *session, source, clone Value)
}

var handlers = [kindCount]handler{
	KindObject:   objectHandler{},
	KindArray:    arrayHandler{},
	KindFunction: functionHandler{},
	KindPattern:  patternHandler{},
	KindInstant:  instantHandler{},
}

type objectHandler struct{}

// shell has no prototype link, inherited data never reaches the clone
func (objectHandler) shell(Value) Value {
	return NewObject()
}

func (objectHandler) fill(s *session, source, clone Value) {
	s.copyProperties(&source.(*Object).Properties, &clone.(*Object).Properties)
}

type arrayHandler struct{}

func (arrayHandler) shell(source Value) Value {
	return &Array{elements: make([]Value, len(source.(*Array).elements))}
}

func (arrayHandler) fill(s *session, source, clone Value) {
	src, dst := source.(*Array), clone.(*Array)
	for i, element := range src.elements {
		dst.elements[i] = s.resolve(element)
	}
	s.copyProperties(&src.Properties, &dst.Properties)
}

type functionHandler struct{}

func (functionHandler) shell(source Value) Value {
	return NewFunction(source.(*Function).body)
}

func (functionHandler) fill(s *session, source, clone Value) {
	s.copyProperties(&source.(*Function).Properties, &clone.(*Function).Properties)
}

type patternHandler struct{}

func (patternHandler) shell(source Value) Value {
	src := source.(*Pattern)
	re, err := compilePattern(src.source, src.flags)
	if err != nil {
		re = src.re
	}
	return &Pattern{source: src.source, flags: src.flags, re: re}
}

func (patternHandler) fill(s *session, source, clone Value) {
	s.copyProperties(&source.(*Pattern).Properties, &clone.(*Pattern).Properties)
}

type instantHandler struct{}

func (instantHandler) shell(source Value) Value {
	return NewInstant(source.(*Instant).at)
}

func (instantHandler) fill(s *session, source, clone Value) {
	s.copyProperties(&source.(*Instant).Properties, &clone.(*Instant).Properties)
}
