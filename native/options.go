package native

import "github.com/viant/tagly/format/text"

// DefaultTagName is the struct tag consulted for property names after the format tag
const DefaultTagName = "json"

type (
	// Options contains import configuration
	Options struct {
		// CaseFormat formats Go field names without an explicit tag name
		CaseFormat text.CaseFormat
		// TagName is the struct tag name to look for property names
		TagName string
		// AccessUnexported if true, unexported fields are imported too
		AccessUnexported bool
	}

	//Option represents import option
	Option func(o *Options)
)

// DefaultOptions returns default import options
func DefaultOptions() *Options {
	return &Options{TagName: DefaultTagName}
}

func (o *Options) apply(options []Option) *Options {
	for _, opt := range options {
		opt(o)
	}
	return o
}

// WithCaseFormat sets case format for untagged field names
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithTagName sets struct tag name used for property names
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithUnexported controls whether unexported fields are imported
func WithUnexported(flag bool) Option {
	return func(o *Options) {
		o.AccessUnexported = flag
	}
}
