package native

import "github.com/viant/clonology"

type exporter struct {
	visited map[clonology.Value]interface{}
}

// Export converts a value graph into plain Go data: objects become map[string]interface{},
// arrays become []interface{}, instants time.Time, patterns *regexp.Regexp and functions clonology.Func.
// Symbol keyed properties and extra array properties have no native counterpart and are skipped.
func Export(value clonology.Value) interface{} {
	e := &exporter{visited: map[clonology.Value]interface{}{}}
	return e.export(value)
}

func (e *exporter) export(value clonology.Value) interface{} {
	if clonology.IsUndefined(value) {
		return nil
	}
	kind := clonology.KindOf(value)
	if !kind.IsComposite() {
		return value
	}
	if prior, ok := e.visited[value]; ok {
		return prior
	}
	switch actual := value.(type) {
	case *clonology.Object:
		result := make(map[string]interface{}, actual.Properties.Len())
		e.visited[value] = result
		actual.Range(func(key clonology.PropertyKey, item clonology.Value) bool {
			if !key.IsSymbol() {
				result[key.Name()] = e.export(item)
			}
			return true
		})
		return result
	case *clonology.Array:
		result := make([]interface{}, actual.Len())
		e.visited[value] = result
		for i := range result {
			result[i] = e.export(actual.At(i))
		}
		return result
	case *clonology.Function:
		return actual.Body()
	case *clonology.Pattern:
		return actual.Regexp()
	case *clonology.Instant:
		return actual.Time()
	}
	return value
}
