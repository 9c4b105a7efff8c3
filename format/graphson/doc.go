// Package graphson parses line-delimited GraphSON vertex data, the JSON
// interchange format for graph datasets. Property values are extracted lazily
// from the raw JSON using gjson paths.
package graphson
