package visitor

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSliceVisitor(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}

	visit := SliceVisitorOf(mySlice)
	clone := []interface{}{}
	err := visit(func(index int, element interface{}) (bool, error) {
		clone = append(clone, element)
		return true, nil // continue iteration
	})
	assert.NoError(t, err)
	assert.EqualValues(t, mySlice, clone)
}

func TestAnySliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		expectErr   bool
	}{
		{description: "typed slice", value: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "reflected slice", value: []int8{1, 2}, expect: []interface{}{int8(1), int8(2)}},
		{description: "array", value: [2]int{3, 4}, expect: []interface{}{3, 4}},
		{description: "not a slice", value: "abc", expectErr: true},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.value)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		var actual []interface{}
		err = visit(func(index int, element interface{}) (bool, error) {
			actual = append(actual, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}

	visit, _ := AnySliceVisitorOf([]int{1, 2, 3})
	failure := errors.New("stop")
	err := visit(func(index int, element interface{}) (bool, error) {
		return true, failure
	})
	assert.Equal(t, failure, err)
}
