package clonology

type (
	//Func represents invocable behaviour
	Func func(args ...Value) Value

	//Function represents a callable value with its own properties
	Function struct {
		Properties
		body Func
	}
)

// NewFunction creates a function
func NewFunction(body Func) *Function {
	return &Function{body: body}
}

// Call invokes function body
func (f *Function) Call(args ...Value) Value {
	if f.body == nil {
		return Undefined
	}
	return f.body(args...)
}

// Body returns function body, clones share the same body
func (f *Function) Body() Func {
	return f.body
}
