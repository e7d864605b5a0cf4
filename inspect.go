package clonology

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Inspect returns deterministic text representation of a value, a composite referenced by its own descendant is rendered as [Circular]
func Inspect(value Value) string {
	builder := &strings.Builder{}
	inspector := &inspector{builder: builder, path: map[Value]bool{}}
	inspector.write(value)
	return builder.String()
}

type inspector struct {
	builder *strings.Builder
	path    map[Value]bool
}

func (i *inspector) write(value Value) {
	kind := KindOf(value)
	if kind.IsComposite() {
		if i.path[value] {
			i.builder.WriteString("[Circular]")
			return
		}
		i.path[value] = true
		defer delete(i.path, value)
	}
	switch actual := value.(type) {
	case nil:
		i.builder.WriteString("null")
	case string:
		i.builder.WriteString(strconv.Quote(actual))
	case float64:
		i.builder.WriteString(formatNumber(actual))
	case float32:
		i.builder.WriteString(formatNumber(float64(actual)))
	case *Object:
		if actual == nil {
			i.builder.WriteString("null")
			return
		}
		i.writeProperties(&actual.Properties, "{", "}", false)
	case *Array:
		if actual == nil {
			i.builder.WriteString("null")
			return
		}
		i.builder.WriteByte('[')
		for j, element := range actual.elements {
			if j > 0 {
				i.builder.WriteString(", ")
			}
			i.write(element)
		}
		i.writeProperties(&actual.Properties, "", "", actual.Len() > 0)
		i.builder.WriteByte(']')
	case *Function:
		if actual == nil {
			i.builder.WriteString("null")
			return
		}
		i.builder.WriteString("[Function]")
		i.writeTrailingProperties(&actual.Properties)
	case *Pattern:
		if actual == nil {
			i.builder.WriteString("null")
			return
		}
		i.builder.WriteString(actual.String())
		i.writeTrailingProperties(&actual.Properties)
	case *Instant:
		if actual == nil {
			i.builder.WriteString("null")
			return
		}
		i.builder.WriteString(actual.at.UTC().Format(time.RFC3339Nano))
		i.writeTrailingProperties(&actual.Properties)
	default:
		i.builder.WriteString(fmt.Sprintf("%v", actual))
	}
}

func (i *inspector) writeTrailingProperties(props *Properties) {
	if len(props.Keys()) == 0 {
		return
	}
	i.builder.WriteByte(' ')
	i.writeProperties(props, "{", "}", false)
}

func (i *inspector) writeProperties(props *Properties, open, closing string, separate bool) {
	i.builder.WriteString(open)
	props.Range(func(key PropertyKey, value Value) bool {
		if separate {
			i.builder.WriteString(", ")
		}
		separate = true
		i.builder.WriteString(key.String())
		i.builder.WriteString(": ")
		i.write(value)
		return true
	})
	i.builder.WriteString(closing)
}

func formatNumber(number float64) string {
	switch {
	case math.IsNaN(number):
		return "NaN"
	case math.IsInf(number, 1):
		return "Infinity"
	case math.IsInf(number, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(number, 'g', -1, 64)
}
