package visitor

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

func Test_StructVisitor_Visit(t *testing.T) {

	type Audit struct {
		Created string
	}
	type Employee struct {
		ID      int
		Name    string
		Company string
		Audit
	}

	emp := &Employee{ID: 1, Name: "John Doe", Company: "OpenAI", Audit: Audit{Created: "today"}}
	empType := reflect.TypeOf(emp).Elem()
	auditHolder, _ := empType.FieldByName("Audit")
	created, _ := reflect.TypeOf(Audit{}).FieldByName("Created")
	id, _ := empType.FieldByName("ID")
	name, _ := empType.FieldByName("Name")
	fields := Fields{
		NewField("id", id),
		NewField("name", name),
		NewField("created", created, auditHolder),
	}

	for _, value := range []interface{}{emp, *emp} {
		visit, err := StructVisitorOf(value, fields)
		if !assert.Nil(t, err) {
			return
		}
		var clone = map[string]interface{}{}
		err = visit(func(key string, value interface{}) (bool, error) {
			clone[key] = value
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, map[string]interface{}{"id": 1, "name": "John Doe", "created": "today"}, clone)
	}

	_, err := StructVisitorOf((*Employee)(nil), fields)
	assert.NotNil(t, err)
	_, err = StructVisitorOf(1, fields)
	assert.NotNil(t, err)
}

func TestSyncMap(t *testing.T) {
	aMap := NewSyncMap[string, int]()
	aMap.Put("a", 1)
	value, ok := aMap.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, aMap.GetOrCreate("a", func() int { return 2 }))
	assert.Equal(t, 3, aMap.GetOrCreate("b", func() int { return 3 }))
	assert.Equal(t, 2, aMap.Len())
}
