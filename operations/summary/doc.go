// Package summary provides operation descriptors which aggregate graph data
// into non-graph statistics. Every operation here is a grouping operation, and
// a pipeline ending in one is statistics-producing.
package summary
