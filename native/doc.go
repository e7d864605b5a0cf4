// Package native converts native Go data to and from clonology value graphs.
// Import maps structs, maps, slices, times and regular expressions onto objects,
// arrays, instants and patterns, reproducing pointer aliasing and cycles; Export
// turns a graph back into plain Go maps, slices and values.
package native
