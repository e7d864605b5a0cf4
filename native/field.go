package native

import (
	"reflect"
	"strings"
	"time"

	"github.com/viant/clonology/visitor"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

var timeType = reflect.TypeOf(time.Time{})

type planKey struct {
	rType      reflect.Type
	caseFormat text.CaseFormat
	tagName    string
	unexported bool
}

var plans = visitor.NewSyncMap[planKey, visitor.Fields]()

// structFields returns cached field plan for supplied struct type
func structFields(rType reflect.Type, options *Options) visitor.Fields {
	key := planKey{rType: rType, caseFormat: options.CaseFormat, tagName: options.TagName, unexported: options.AccessUnexported}
	return plans.GetOrCreate(key, func() visitor.Fields {
		return buildFields(rType, options, nil)
	})
}

func buildFields(rType reflect.Type, options *Options, holders []reflect.StructField) visitor.Fields {
	var result visitor.Fields
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !field.IsExported() && !options.AccessUnexported && !field.Anonymous {
			continue
		}
		name, explicit, ignore := fieldName(field, options)
		if ignore {
			continue
		}
		if field.Anonymous && !explicit && field.Type.Kind() == reflect.Struct && field.Type != timeType {
			result = append(result, buildFields(field.Type, options, append(holders[:len(holders):len(holders)], field))...)
			continue
		}
		if !field.IsExported() && !options.AccessUnexported {
			continue
		}
		result = append(result, visitor.NewField(name, field, holders...))
	}
	return result
}

// fieldName resolves property name: format tag name, then configured tag name, then formatted Go name
func fieldName(field reflect.StructField, options *Options) (name string, explicit bool, ignore bool) {
	formatTag, _ := format.Parse(field.Tag)
	if formatTag != nil && formatTag.Ignore {
		return "", false, true
	}
	if formatTag != nil && formatTag.Name != "" {
		return applyCaseFormat(formatTag.Name, text.NewCaseFormat(formatTag.CaseFormat)), true, false
	}
	if options.TagName != "" {
		if tagValue, ok := field.Tag.Lookup(options.TagName); ok {
			tagName, _, _ := strings.Cut(tagValue, ",")
			if tagName == "-" {
				return "", false, true
			}
			if tagName != "" {
				return tagName, true, false
			}
		}
	}
	if formatTag != nil && formatTag.CaseFormat != "" {
		return applyCaseFormat(field.Name, text.NewCaseFormat(formatTag.CaseFormat)), false, false
	}
	return applyCaseFormat(field.Name, options.CaseFormat), false, false
}

func applyCaseFormat(name string, caseFormat text.CaseFormat) string {
	if !caseFormat.IsDefined() {
		return name
	}
	if name == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat)
}
