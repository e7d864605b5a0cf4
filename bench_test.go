package clonology

import (
	"strconv"
	"testing"
)

// Benchmark cloning a wide object with nested arrays.
func BenchmarkCloner_Clone_Wide(b *testing.B) {
	source := NewObject()
	for i := 0; i < 100; i++ {
		source.Set("k"+strconv.Itoa(i), NewArray(float64(i), "v", NewObject().With("i", i)))
	}
	cloner := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cloner.Clone(source)
	}
}

// Benchmark cloning a deep chain, exercises the work list instead of recursion.
func BenchmarkCloner_Clone_Deep(b *testing.B) {
	source := NewObject()
	current := source
	for i := 0; i < 1000; i++ {
		next := NewObject()
		current.Set("child", next)
		current = next
	}
	cloner := New(WithCapacity(1024))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cloner.Clone(source)
	}
}
