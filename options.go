package clonology

import "github.com/sirupsen/logrus"

//Option cloner option
type Option func(c *Cloner)

//Options represents cloner options
type Options []Option

//Apply applies options
func (o Options) Apply(c *Cloner) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

//WithLogger sets logger, unrecognized values shared by reference are reported at debug level
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Cloner) {
		if logger != nil {
			c.logger = logger
		}
	}
}

//WithCapacity presizes per call visited map and work list
func WithCapacity(capacity int) Option {
	return func(c *Cloner) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}
