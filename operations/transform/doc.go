// Package transform provides operation descriptors which derive new graph data
// from existing graph data: identity, element transforms, traversals and
// property projections.
package transform
