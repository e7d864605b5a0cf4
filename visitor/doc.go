// Package visitor offers ordered visitors over native Go containers.
// Maps are visited in sorted key order, slices and arrays by index and structs
// by a precomputed field plan read through xunsafe, so that importing native data
// into a value graph is deterministic.
package visitor
