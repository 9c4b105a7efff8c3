// Package gryf is a compiler for batch graph-processing pipelines. An ordered
// sequence of declarative graph operations (transforms, filters, side effects
// and grouping aggregations) is lowered into the minimal ordered chain of batch
// stages, fusing consecutive map-only operations into single stages and cutting
// a stage boundary whenever an operation requires cross-record grouping. The
// compiled chain is wired together through pipeline-owned intermediate storage
// locations and executed strictly in order against a pluggable batch substrate.
package gryf
