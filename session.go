package clonology

import "fmt"

type (
	//session holds state of a single Clone call
	session struct {
		*Cloner
		visited map[Value]Value
		pending []task
	}

	//task represents a registered clone shell waiting for its children
	task struct {
		handler handler
		source  Value
		clone   Value
	}
)

func newSession(cloner *Cloner) *session {
	return &session{
		Cloner:  cloner,
		visited: make(map[Value]Value, cloner.capacity),
		pending: make([]task, 0, cloner.capacity),
	}
}

// run clones root and drains the work list, children are pushed rather than recursed into
func (s *session) run(root Value) Value {
	result := s.resolve(root)
	for len(s.pending) > 0 {
		last := len(s.pending) - 1
		next := s.pending[last]
		s.pending[last] = task{}
		s.pending = s.pending[:last]
		next.handler.fill(s, next.source, next.clone)
	}
	return result
}

// resolve returns the clone for value, composite shells are registered before any child is visited
func (s *session) resolve(value Value) Value {
	kind := KindOf(value)
	if kind == KindPrimitive {
		return value
	}
	aHandler := handlers[kind]
	if aHandler == nil {
		if isDebugEnabled(s.logger) {
			s.logger.WithField("type", fmt.Sprintf("%T", value)).Debug("sharing unrecognized value by reference")
		}
		return value
	}
	if prior, ok := s.visited[value]; ok {
		return prior
	}
	clone := aHandler.shell(value)
	s.visited[value] = clone
	s.pending = append(s.pending, task{handler: aHandler, source: value, clone: clone})
	return clone
}

func (s *session) copyProperties(source, clone *Properties) {
	source.Range(func(key PropertyKey, value Value) bool {
		clone.SetKey(key, s.resolve(value))
		return true
	})
}
