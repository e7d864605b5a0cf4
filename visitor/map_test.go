package visitor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewMapVisitor(t *testing.T) {
	var aMap = map[string]bool{
		"def": true,
		"abc": false,
		"xyz": true}

	{
		var keys []string
		cloned := make(map[string]bool)
		visit := MapVisitorOf[string, bool](aMap)
		err := visit(func(key string, element bool) (bool, error) {
			keys = append(keys, key)
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
		assert.Equal(t, []string{"abc", "def", "xyz"}, keys)
	}
	{
		visit, err := AnyMapVisitorOf(aMap)
		assert.Nil(t, err)
		var keys []any
		visit(func(key any, element any) (bool, error) {
			keys = append(keys, key)
			return len(keys) < 2, nil
		})
		assert.Equal(t, []any{"abc", "def"}, keys)
	}
	{
		fMap := map[float64]float64{
			2: 4,
			1: 1,
		}
		visit, err := AnyMapVisitorOf(fMap)
		assert.Nil(t, err)
		var keys []any
		visit(func(key any, element any) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Equal(t, []any{1.0, 2.0}, keys)
	}
	{
		type key struct{ ID int }
		_, err := AnyMapVisitorOf(map[key]int{{ID: 1}: 1})
		assert.NotNil(t, err)
		_, err = AnyMapVisitorOf([]int{1})
		assert.NotNil(t, err)
	}
}
