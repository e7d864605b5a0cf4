package clonology

import (
	"io"

	"github.com/sirupsen/logrus"
)

const defaultCapacity = 16

// Cloner deep copies value graphs, it holds configuration only and is safe for concurrent use
type Cloner struct {
	logger   logrus.FieldLogger
	capacity int
}

var defaultCloner = New()

// New creates a cloner
func New(options ...Option) *Cloner {
	ret := &Cloner{logger: discardLogger(), capacity: defaultCapacity}
	Options(options).Apply(ret)
	return ret
}

// Clone returns a deep copy of value: primitives are returned as is, composites are recreated
// with own enumerable data only, aliasing and cycles are reproduced in the copy
func (c *Cloner) Clone(value Value) Value {
	if KindOf(value) == KindPrimitive {
		return value
	}
	s := newSession(c)
	return s.run(value)
}

// Clone deep copies value with the default cloner
func Clone[T any](value T) T {
	cloned, _ := defaultCloner.Clone(value).(T)
	return cloned
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type levelEnabler interface {
	IsLevelEnabled(level logrus.Level) bool
}

func isDebugEnabled(logger logrus.FieldLogger) bool {
	switch actual := logger.(type) {
	case levelEnabler:
		return actual.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return actual.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
