// Package sideeffect provides operation descriptors which mutate the graph as
// it flows through the pipeline: arbitrary element side effects, edge and
// vertex commits, and link creation.
package sideeffect
